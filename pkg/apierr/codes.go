package apierr

// Numeric error codes returned by the SpaceTraders API, plus the reserved
// 6000 band for errors synthesized by this client.
const (
	// General
	CodeCooldownConflict = 4000
	CodeWaypointNoAccess = 4001

	// Account
	CodeTokenEmpty          = 4100
	CodeTokenMissingSubject = 4101
	CodeTokenInvalidSubject = 4102
	CodeMissingTokenRequest = 4103
	CodeInvalidTokenRequest = 4104
	CodeInvalidTokenSubject = 4105
	CodeAccountNotExists    = 4106
	CodeAgentNotExists      = 4107
	CodeAccountHasNoAgent   = 4108
	CodeRegisterAgentExists = 4109

	// Ship
	CodeNavigateInTransit            = 4200
	CodeNavigateInvalidDestination   = 4201
	CodeNavigateOutsideSystem        = 4202
	CodeNavigateInsufficientFuel     = 4203
	CodeNavigateSameDestination      = 4204
	CodeShipExtractInvalidWaypoint   = 4205
	CodeShipExtractPermission        = 4206
	CodeShipJumpNoSystem             = 4207
	CodeShipJumpSameSystem           = 4208
	CodeShipJumpMissingModule        = 4210
	CodeShipJumpNoValidWaypoint      = 4211
	CodeShipJumpMissingAntimatter    = 4212
	CodeShipInTransit                = 4214
	CodeShipMissingSensorArrays      = 4215
	CodePurchaseShipCredits          = 4216
	CodeShipCargoExceedsLimit        = 4217
	CodeShipCargoMissing             = 4218
	CodeShipCargoUnitCount           = 4219
	CodeShipSurveyVerification       = 4220
	CodeShipSurveyExpiration         = 4221
	CodeShipSurveyWaypointType       = 4222
	CodeShipSurveyOrbit              = 4223
	CodeShipSurveyExhausted          = 4224
	CodeShipRefuelDocked             = 4225
	CodeShipRefuelInvalidWaypoint    = 4226
	CodeShipMissingMounts            = 4227
	CodeShipCargoFull                = 4228
	CodeShipJumpFromGateToGate       = 4229
	CodeWaypointCharted              = 4230
	CodeShipTransferShipNotFound     = 4231
	CodeShipTransferAgentConflict    = 4232
	CodeShipTransferSameShipConflict = 4233
	CodeShipTransferLocationConflict = 4234
	CodeWarpInsideSystem             = 4235
	CodeShipNotInOrbit               = 4236
	CodeShipInvalidRefineryGood      = 4237
	CodeShipInvalidRefineryType      = 4238
	CodeShipMissingRefinery          = 4239
	CodeShipMissingSurveyor          = 4240

	// Contract
	CodeAcceptContractNotAuthorized = 4500
	CodeAcceptContractConflict      = 4501
	CodeFulfillContractDelivery     = 4502
	CodeContractDeadline            = 4503
	CodeContractFulfilled           = 4504
	CodeContractNotAccepted         = 4505
	CodeContractNotAuthorized       = 4506
	CodeShipDeliverTerms            = 4508
	CodeShipDeliverFulfilled        = 4509
	CodeShipDeliverInvalidLocation  = 4510

	// Market
	CodeMarketTradeInsufficientCredits = 4600
	CodeMarketTradeNoPurchase          = 4601
	CodeMarketTradeNotSold             = 4602
	CodeMarketNotFound                 = 4603
	CodeMarketTradeUnitLimit           = 4604

	// Client-synthesized
	CodeBadReply = 6000
)

// UnknownName is returned by Name for any code missing from the table.
const UnknownName = "unknownError"

// names is read-only after package initialization.
var names = map[int]string{
	CodeCooldownConflict: "cooldownConflictError",
	CodeWaypointNoAccess: "waypointNoAccessError",

	CodeTokenEmpty:          "tokenEmptyError",
	CodeTokenMissingSubject: "tokenMissingSubjectError",
	CodeTokenInvalidSubject: "tokenInvalidSubjectError",
	CodeMissingTokenRequest: "missingTokenRequestError",
	CodeInvalidTokenRequest: "invalidTokenRequestError",
	CodeInvalidTokenSubject: "invalidTokenSubjectError",
	CodeAccountNotExists:    "accountNotExistsError",
	CodeAgentNotExists:      "agentNotExistsError",
	CodeAccountHasNoAgent:   "accountHasNoAgentError",
	CodeRegisterAgentExists: "registerAgentExistsError",

	CodeNavigateInTransit:            "navigateInTransitError",
	CodeNavigateInvalidDestination:   "navigateInvalidDestinationError",
	CodeNavigateOutsideSystem:        "navigateOutsideSystemError",
	CodeNavigateInsufficientFuel:     "navigateInsufficientFuelError",
	CodeNavigateSameDestination:      "navigateSameDestinationError",
	CodeShipExtractInvalidWaypoint:   "shipExtractInvalidWaypointError",
	CodeShipExtractPermission:        "shipExtractPermissionError",
	CodeShipJumpNoSystem:             "shipJumpNoSystemError",
	CodeShipJumpSameSystem:           "shipJumpSameSystemError",
	CodeShipJumpMissingModule:        "shipJumpMissingModuleError",
	CodeShipJumpNoValidWaypoint:      "shipJumpNoValidWaypointError",
	CodeShipJumpMissingAntimatter:    "shipJumpMissingAntimatterError",
	CodeShipInTransit:                "shipInTransitError",
	CodeShipMissingSensorArrays:      "shipMissingSensorArraysError",
	CodePurchaseShipCredits:          "purchaseShipCreditsError",
	CodeShipCargoExceedsLimit:        "shipCargoExceedsLimitError",
	CodeShipCargoMissing:             "shipCargoMissingError",
	CodeShipCargoUnitCount:           "shipCargoUnitCountError",
	CodeShipSurveyVerification:       "shipSurveyVerificationError",
	CodeShipSurveyExpiration:         "shipSurveyExpirationError",
	CodeShipSurveyWaypointType:       "shipSurveyWaypointTypeError",
	CodeShipSurveyOrbit:              "shipSurveyOrbitError",
	CodeShipSurveyExhausted:          "shipSurveyExhaustedError",
	CodeShipRefuelDocked:             "shipRefuelDockedError",
	CodeShipRefuelInvalidWaypoint:    "shipRefuelInvalidWaypointError",
	CodeShipMissingMounts:            "shipMissingMountsError",
	CodeShipCargoFull:                "shipCargoFullError",
	CodeShipJumpFromGateToGate:       "shipJumpFromGateToGateError",
	CodeWaypointCharted:              "waypointChartedError",
	CodeShipTransferShipNotFound:     "shipTransferShipNotFound",
	CodeShipTransferAgentConflict:    "shipTransferAgentConflict",
	CodeShipTransferSameShipConflict: "shipTransferSameShipConflict",
	CodeShipTransferLocationConflict: "shipTransferLocationConflict",
	CodeWarpInsideSystem:             "warpInsideSystemError",
	CodeShipNotInOrbit:               "shipNotInOrbitError",
	CodeShipInvalidRefineryGood:      "shipInvalidRefineryGoodError",
	CodeShipInvalidRefineryType:      "shipInvalidRefineryTypeError",
	CodeShipMissingRefinery:          "shipMissingRefineryError",
	CodeShipMissingSurveyor:          "shipMissingSurveyorError",

	CodeAcceptContractNotAuthorized: "acceptContractNotAuthorizedError",
	CodeAcceptContractConflict:      "acceptContractConflictError",
	CodeFulfillContractDelivery:     "fulfillContractDeliveryError",
	CodeContractDeadline:            "contractDeadlineError",
	CodeContractFulfilled:           "contractFulfilledError",
	CodeContractNotAccepted:         "contractNotAcceptedError",
	CodeContractNotAuthorized:       "contractNotAuthorizedError",
	CodeShipDeliverTerms:            "shipDeliverTermsError",
	CodeShipDeliverFulfilled:        "shipDeliverFulfilledError",
	CodeShipDeliverInvalidLocation:  "shipDeliverInvalidLocationError",

	CodeMarketTradeInsufficientCredits: "marketTradeInsufficientCreditsError",
	CodeMarketTradeNoPurchase:          "marketTradeNoPurchaseError",
	CodeMarketTradeNotSold:             "marketTradeNotSoldError",
	CodeMarketNotFound:                 "marketNotFoundError",
	CodeMarketTradeUnitLimit:           "marketTradeUnitLimitError",

	CodeBadReply: "badReplyError",
}

// Name returns the symbolic name for an API error code. It never fails:
// codes outside the table map to UnknownName.
func Name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	return UnknownName
}

// Known reports whether code has an entry in the taxonomy table.
func Known(code int) bool {
	_, ok := names[code]
	return ok
}
