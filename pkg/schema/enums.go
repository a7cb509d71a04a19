package schema

// ContractType is the kind of work a contract asks for.
type ContractType string

const (
	ContractTypeProcurement ContractType = "PROCUREMENT"
	ContractTypeTransport   ContractType = "TRANSPORT"
	ContractTypeShuttle     ContractType = "SHUTTLE"
)

var contractTypes = newEnum("ContractType",
	ContractTypeProcurement,
	ContractTypeTransport,
	ContractTypeShuttle,
)

// ParseContractType returns the ContractType for s or an *UnknownVariantError.
func ParseContractType(s string) (ContractType, error) { return contractTypes.parse(s) }

// ContractTypeValues lists every known ContractType in declaration order.
func ContractTypeValues() []ContractType { return contractTypes.list() }

func (v *ContractType) UnmarshalJSON(b []byte) error { return contractTypes.decode(b, v) }

// MarketTransactionType is the direction of a market trade.
type MarketTransactionType string

const (
	TransactionPurchase MarketTransactionType = "PURCHASE"
	TransactionSell     MarketTransactionType = "SELL"
)

var marketTransactionTypes = newEnum("MarketTransactionType",
	TransactionPurchase,
	TransactionSell,
)

// ParseMarketTransactionType returns the MarketTransactionType for s or an *UnknownVariantError.
func ParseMarketTransactionType(s string) (MarketTransactionType, error) { return marketTransactionTypes.parse(s) }

// MarketTransactionTypeValues lists every known MarketTransactionType in declaration order.
func MarketTransactionTypeValues() []MarketTransactionType { return marketTransactionTypes.list() }

func (v *MarketTransactionType) UnmarshalJSON(b []byte) error { return marketTransactionTypes.decode(b, v) }

// ShipCrewRotation is the shift schedule of a ship crew.
type ShipCrewRotation string

const (
	CrewRotationStrict  ShipCrewRotation = "STRICT"
	CrewRotationRelaxed ShipCrewRotation = "RELAXED"
)

var shipCrewRotations = newEnum("ShipCrewRotation",
	CrewRotationStrict,
	CrewRotationRelaxed,
)

// ParseShipCrewRotation returns the ShipCrewRotation for s or an *UnknownVariantError.
func ParseShipCrewRotation(s string) (ShipCrewRotation, error) { return shipCrewRotations.parse(s) }

// ShipCrewRotationValues lists every known ShipCrewRotation in declaration order.
func ShipCrewRotationValues() []ShipCrewRotation { return shipCrewRotations.list() }

func (v *ShipCrewRotation) UnmarshalJSON(b []byte) error { return shipCrewRotations.decode(b, v) }

// ShipEngineSymbol identifies a ship engine model.
type ShipEngineSymbol string

const (
	EngineImpulseDriveI ShipEngineSymbol = "ENGINE_IMPULSE_DRIVE_I"
	EngineIonDriveI     ShipEngineSymbol = "ENGINE_ION_DRIVE_I"
	EngineIonDriveII    ShipEngineSymbol = "ENGINE_ION_DRIVE_II"
	EngineHyperDriveI   ShipEngineSymbol = "ENGINE_HYPER_DRIVE_I"
)

var shipEngineSymbols = newEnum("ShipEngineSymbol",
	EngineImpulseDriveI,
	EngineIonDriveI,
	EngineIonDriveII,
	EngineHyperDriveI,
)

// ParseShipEngineSymbol returns the ShipEngineSymbol for s or an *UnknownVariantError.
func ParseShipEngineSymbol(s string) (ShipEngineSymbol, error) { return shipEngineSymbols.parse(s) }

// ShipEngineSymbolValues lists every known ShipEngineSymbol in declaration order.
func ShipEngineSymbolValues() []ShipEngineSymbol { return shipEngineSymbols.list() }

func (v *ShipEngineSymbol) UnmarshalJSON(b []byte) error { return shipEngineSymbols.decode(b, v) }

// ShipFrameSymbol identifies a ship frame model.
type ShipFrameSymbol string

const (
	FrameProbe          ShipFrameSymbol = "FRAME_PROBE"
	FrameDrone          ShipFrameSymbol = "FRAME_DRONE"
	FrameInterceptor    ShipFrameSymbol = "FRAME_INTERCEPTOR"
	FrameRacer          ShipFrameSymbol = "FRAME_RACER"
	FrameFighter        ShipFrameSymbol = "FRAME_FIGHTER"
	FrameFrigate        ShipFrameSymbol = "FRAME_FRIGATE"
	FrameShuttle        ShipFrameSymbol = "FRAME_SHUTTLE"
	FrameExplorer       ShipFrameSymbol = "FRAME_EXPLORER"
	FrameMiner          ShipFrameSymbol = "FRAME_MINER"
	FrameLightFreighter ShipFrameSymbol = "FRAME_LIGHT_FREIGHTER"
	FrameHeavyFreighter ShipFrameSymbol = "FRAME_HEAVY_FREIGHTER"
	FrameTransport      ShipFrameSymbol = "FRAME_TRANSPORT"
	FrameDestroyer      ShipFrameSymbol = "FRAME_DESTROYER"
	FrameCruiser        ShipFrameSymbol = "FRAME_CRUISER"
	FrameCarrier        ShipFrameSymbol = "FRAME_CARRIER"
)

var shipFrameSymbols = newEnum("ShipFrameSymbol",
	FrameProbe,
	FrameDrone,
	FrameInterceptor,
	FrameRacer,
	FrameFighter,
	FrameFrigate,
	FrameShuttle,
	FrameExplorer,
	FrameMiner,
	FrameLightFreighter,
	FrameHeavyFreighter,
	FrameTransport,
	FrameDestroyer,
	FrameCruiser,
	FrameCarrier,
)

// ParseShipFrameSymbol returns the ShipFrameSymbol for s or an *UnknownVariantError.
func ParseShipFrameSymbol(s string) (ShipFrameSymbol, error) { return shipFrameSymbols.parse(s) }

// ShipFrameSymbolValues lists every known ShipFrameSymbol in declaration order.
func ShipFrameSymbolValues() []ShipFrameSymbol { return shipFrameSymbols.list() }

func (v *ShipFrameSymbol) UnmarshalJSON(b []byte) error { return shipFrameSymbols.decode(b, v) }

// ShipModuleSymbol identifies a ship module model.
type ShipModuleSymbol string

const (
	ModuleMineralProcessorI ShipModuleSymbol = "MODULE_MINERAL_PROCESSOR_I"
	ModuleCargoHoldI        ShipModuleSymbol = "MODULE_CARGO_HOLD_I"
	ModuleCrewQuartersI     ShipModuleSymbol = "MODULE_CREW_QUARTERS_I"
	ModuleEnvoyQuartersI    ShipModuleSymbol = "MODULE_ENVOY_QUARTERS_I"
	ModulePassengerCabinI   ShipModuleSymbol = "MODULE_PASSENGER_CABIN_I"
	ModuleMicroRefineryI    ShipModuleSymbol = "MODULE_MICRO_REFINERY_I"
	ModuleOreRefineryI      ShipModuleSymbol = "MODULE_ORE_REFINERY_I"
	ModuleFuelRefineryI     ShipModuleSymbol = "MODULE_FUEL_REFINERY_I"
	ModuleScienceLabI       ShipModuleSymbol = "MODULE_SCIENCE_LAB_I"
	ModuleJumpDriveI        ShipModuleSymbol = "MODULE_JUMP_DRIVE_I"
	ModuleJumpDriveII       ShipModuleSymbol = "MODULE_JUMP_DRIVE_II"
	ModuleJumpDriveIII      ShipModuleSymbol = "MODULE_JUMP_DRIVE_III"
	ModuleWarpDriveI        ShipModuleSymbol = "MODULE_WARP_DRIVE_I"
	ModuleWarpDriveII       ShipModuleSymbol = "MODULE_WARP_DRIVE_II"
	ModuleWarpDriveIII      ShipModuleSymbol = "MODULE_WARP_DRIVE_III"
	ModuleShieldGeneratorI  ShipModuleSymbol = "MODULE_SHIELD_GENERATOR_I"
	ModuleShieldGeneratorII ShipModuleSymbol = "MODULE_SHIELD_GENERATOR_II"
)

var shipModuleSymbols = newEnum("ShipModuleSymbol",
	ModuleMineralProcessorI,
	ModuleCargoHoldI,
	ModuleCrewQuartersI,
	ModuleEnvoyQuartersI,
	ModulePassengerCabinI,
	ModuleMicroRefineryI,
	ModuleOreRefineryI,
	ModuleFuelRefineryI,
	ModuleScienceLabI,
	ModuleJumpDriveI,
	ModuleJumpDriveII,
	ModuleJumpDriveIII,
	ModuleWarpDriveI,
	ModuleWarpDriveII,
	ModuleWarpDriveIII,
	ModuleShieldGeneratorI,
	ModuleShieldGeneratorII,
)

// ParseShipModuleSymbol returns the ShipModuleSymbol for s or an *UnknownVariantError.
func ParseShipModuleSymbol(s string) (ShipModuleSymbol, error) { return shipModuleSymbols.parse(s) }

// ShipModuleSymbolValues lists every known ShipModuleSymbol in declaration order.
func ShipModuleSymbolValues() []ShipModuleSymbol { return shipModuleSymbols.list() }

func (v *ShipModuleSymbol) UnmarshalJSON(b []byte) error { return shipModuleSymbols.decode(b, v) }

// ShipMountSymbol identifies a ship mount model.
type ShipMountSymbol string

const (
	MountGasSiphonI       ShipMountSymbol = "MOUNT_GAS_SIPHON_I"
	MountGasSiphonII      ShipMountSymbol = "MOUNT_GAS_SIPHON_II"
	MountGasSiphonIII     ShipMountSymbol = "MOUNT_GAS_SIPHON_III"
	MountSurveyorI        ShipMountSymbol = "MOUNT_SURVEYOR_I"
	MountSurveyorII       ShipMountSymbol = "MOUNT_SURVEYOR_II"
	MountSurveyorIII      ShipMountSymbol = "MOUNT_SURVEYOR_III"
	MountSensorArrayI     ShipMountSymbol = "MOUNT_SENSOR_ARRAY_I"
	MountSensorArrayII    ShipMountSymbol = "MOUNT_SENSOR_ARRAY_II"
	MountSensorArrayIII   ShipMountSymbol = "MOUNT_SENSOR_ARRAY_III"
	MountMiningLaserI     ShipMountSymbol = "MOUNT_MINING_LASER_I"
	MountMiningLaserII    ShipMountSymbol = "MOUNT_MINING_LASER_II"
	MountMiningLaserIII   ShipMountSymbol = "MOUNT_MINING_LASER_III"
	MountLaserCannonI     ShipMountSymbol = "MOUNT_LASER_CANNON_I"
	MountMissileLauncherI ShipMountSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	MountTurretI          ShipMountSymbol = "MOUNT_TURRET_I"
)

var shipMountSymbols = newEnum("ShipMountSymbol",
	MountGasSiphonI,
	MountGasSiphonII,
	MountGasSiphonIII,
	MountSurveyorI,
	MountSurveyorII,
	MountSurveyorIII,
	MountSensorArrayI,
	MountSensorArrayII,
	MountSensorArrayIII,
	MountMiningLaserI,
	MountMiningLaserII,
	MountMiningLaserIII,
	MountLaserCannonI,
	MountMissileLauncherI,
	MountTurretI,
)

// ParseShipMountSymbol returns the ShipMountSymbol for s or an *UnknownVariantError.
func ParseShipMountSymbol(s string) (ShipMountSymbol, error) { return shipMountSymbols.parse(s) }

// ShipMountSymbolValues lists every known ShipMountSymbol in declaration order.
func ShipMountSymbolValues() []ShipMountSymbol { return shipMountSymbols.list() }

func (v *ShipMountSymbol) UnmarshalJSON(b []byte) error { return shipMountSymbols.decode(b, v) }

// ShipReactorSymbol identifies a ship reactor model.
type ShipReactorSymbol string

const (
	ReactorSolarI      ShipReactorSymbol = "REACTOR_SOLAR_I"
	ReactorFusionI     ShipReactorSymbol = "REACTOR_FUSION_I"
	ReactorFissionI    ShipReactorSymbol = "REACTOR_FISSION_I"
	ReactorChemicalI   ShipReactorSymbol = "REACTOR_CHEMICAL_I"
	ReactorAntimatterI ShipReactorSymbol = "REACTOR_ANTIMATTER_I"
)

var shipReactorSymbols = newEnum("ShipReactorSymbol",
	ReactorSolarI,
	ReactorFusionI,
	ReactorFissionI,
	ReactorChemicalI,
	ReactorAntimatterI,
)

// ParseShipReactorSymbol returns the ShipReactorSymbol for s or an *UnknownVariantError.
func ParseShipReactorSymbol(s string) (ShipReactorSymbol, error) { return shipReactorSymbols.parse(s) }

// ShipReactorSymbolValues lists every known ShipReactorSymbol in declaration order.
func ShipReactorSymbolValues() []ShipReactorSymbol { return shipReactorSymbols.list() }

func (v *ShipReactorSymbol) UnmarshalJSON(b []byte) error { return shipReactorSymbols.decode(b, v) }

// ShipNavFlightMode trades speed against fuel. The API default is FlightModeCruise.
type ShipNavFlightMode string

const (
	FlightModeDrift   ShipNavFlightMode = "DRIFT"
	FlightModeStealth ShipNavFlightMode = "STEALTH"
	FlightModeCruise  ShipNavFlightMode = "CRUISE"
	FlightModeBurn    ShipNavFlightMode = "BURN"
)

var shipNavFlightModes = newEnum("ShipNavFlightMode",
	FlightModeDrift,
	FlightModeStealth,
	FlightModeCruise,
	FlightModeBurn,
)

// ParseShipNavFlightMode returns the ShipNavFlightMode for s or an *UnknownVariantError.
func ParseShipNavFlightMode(s string) (ShipNavFlightMode, error) { return shipNavFlightModes.parse(s) }

// ShipNavFlightModeValues lists every known ShipNavFlightMode in declaration order.
func ShipNavFlightModeValues() []ShipNavFlightMode { return shipNavFlightModes.list() }

func (v *ShipNavFlightMode) UnmarshalJSON(b []byte) error { return shipNavFlightModes.decode(b, v) }

// ShipNavStatus is where a ship currently is relative to its waypoint.
type ShipNavStatus string

const (
	NavStatusInTransit ShipNavStatus = "IN_TRANSIT"
	NavStatusInOrbit   ShipNavStatus = "IN_ORBIT"
	NavStatusDocked    ShipNavStatus = "DOCKED"
)

var shipNavStatuss = newEnum("ShipNavStatus",
	NavStatusInTransit,
	NavStatusInOrbit,
	NavStatusDocked,
)

// ParseShipNavStatus returns the ShipNavStatus for s or an *UnknownVariantError.
func ParseShipNavStatus(s string) (ShipNavStatus, error) { return shipNavStatuss.parse(s) }

// ShipNavStatusValues lists every known ShipNavStatus in declaration order.
func ShipNavStatusValues() []ShipNavStatus { return shipNavStatuss.list() }

func (v *ShipNavStatus) UnmarshalJSON(b []byte) error { return shipNavStatuss.decode(b, v) }

// ShipRole is the registered purpose of a ship.
type ShipRole string

const (
	RoleFabricator  ShipRole = "FABRICATOR"
	RoleHarvester   ShipRole = "HARVESTER"
	RoleHauler      ShipRole = "HAULER"
	RoleInterceptor ShipRole = "INTERCEPTOR"
	RoleExcavator   ShipRole = "EXCAVATOR"
	RoleTransport   ShipRole = "TRANSPORT"
	RoleRepair      ShipRole = "REPAIR"
	RoleSurveyor    ShipRole = "SURVEYOR"
	RoleCommand     ShipRole = "COMMAND"
	RoleCarrier     ShipRole = "CARRIER"
	RolePatrol      ShipRole = "PATROL"
	RoleSatellite   ShipRole = "SATELLITE"
	RoleExplorer    ShipRole = "EXPLORER"
	RoleRefinery    ShipRole = "REFINERY"
)

var shipRoles = newEnum("ShipRole",
	RoleFabricator,
	RoleHarvester,
	RoleHauler,
	RoleInterceptor,
	RoleExcavator,
	RoleTransport,
	RoleRepair,
	RoleSurveyor,
	RoleCommand,
	RoleCarrier,
	RolePatrol,
	RoleSatellite,
	RoleExplorer,
	RoleRefinery,
)

// ParseShipRole returns the ShipRole for s or an *UnknownVariantError.
func ParseShipRole(s string) (ShipRole, error) { return shipRoles.parse(s) }

// ShipRoleValues lists every known ShipRole in declaration order.
func ShipRoleValues() []ShipRole { return shipRoles.list() }

func (v *ShipRole) UnmarshalJSON(b []byte) error { return shipRoles.decode(b, v) }

// ShipType is a purchasable ship model.
type ShipType string

const (
	ShipTypeProbe             ShipType = "SHIP_PROBE"
	ShipTypeMiningDrone       ShipType = "SHIP_MINING_DRONE"
	ShipTypeInterceptor       ShipType = "SHIP_INTERCEPTOR"
	ShipTypeLightHauler       ShipType = "SHIP_LIGHT_HAULER"
	ShipTypeCommandFrigate    ShipType = "SHIP_COMMAND_FRIGATE"
	ShipTypeExplorer          ShipType = "SHIP_EXPLORER"
	ShipTypeHeavyFreighter    ShipType = "SHIP_HEAVY_FREIGHTER"
	ShipTypeLightShuttle      ShipType = "SHIP_LIGHT_SHUTTLE"
	ShipTypeOreHound          ShipType = "SHIP_ORE_HOUND"
	ShipTypeRefiningFreighter ShipType = "SHIP_REFINING_FREIGHTER"
)

var shipTypes = newEnum("ShipType",
	ShipTypeProbe,
	ShipTypeMiningDrone,
	ShipTypeInterceptor,
	ShipTypeLightHauler,
	ShipTypeCommandFrigate,
	ShipTypeExplorer,
	ShipTypeHeavyFreighter,
	ShipTypeLightShuttle,
	ShipTypeOreHound,
	ShipTypeRefiningFreighter,
)

// ParseShipType returns the ShipType for s or an *UnknownVariantError.
func ParseShipType(s string) (ShipType, error) { return shipTypes.parse(s) }

// ShipTypeValues lists every known ShipType in declaration order.
func ShipTypeValues() []ShipType { return shipTypes.list() }

func (v *ShipType) UnmarshalJSON(b []byte) error { return shipTypes.decode(b, v) }

// SystemType is the kind of star at the centre of a system.
type SystemType string

const (
	SystemTypeNeutronStar SystemType = "NEUTRON_STAR"
	SystemTypeRedStar     SystemType = "RED_STAR"
	SystemTypeOrangeStar  SystemType = "ORANGE_STAR"
	SystemTypeBlueStar    SystemType = "BLUE_STAR"
	SystemTypeYoungStar   SystemType = "YOUNG_STAR"
	SystemTypeWhiteDwarf  SystemType = "WHITE_DWARF"
	SystemTypeBlackHole   SystemType = "BLACK_HOLE"
	SystemTypeHypergiant  SystemType = "HYPERGIANT"
	SystemTypeNebula      SystemType = "NEBULA"
	SystemTypeUnstable    SystemType = "UNSTABLE"
)

var systemTypes = newEnum("SystemType",
	SystemTypeNeutronStar,
	SystemTypeRedStar,
	SystemTypeOrangeStar,
	SystemTypeBlueStar,
	SystemTypeYoungStar,
	SystemTypeWhiteDwarf,
	SystemTypeBlackHole,
	SystemTypeHypergiant,
	SystemTypeNebula,
	SystemTypeUnstable,
)

// ParseSystemType returns the SystemType for s or an *UnknownVariantError.
func ParseSystemType(s string) (SystemType, error) { return systemTypes.parse(s) }

// SystemTypeValues lists every known SystemType in declaration order.
func SystemTypeValues() []SystemType { return systemTypes.list() }

func (v *SystemType) UnmarshalJSON(b []byte) error { return systemTypes.decode(b, v) }

// WaypointType is the kind of body at a waypoint.
type WaypointType string

const (
	WaypointTypePlanet         WaypointType = "PLANET"
	WaypointTypeGasGiant       WaypointType = "GAS_GIANT"
	WaypointTypeMoon           WaypointType = "MOON"
	WaypointTypeOrbitalStation WaypointType = "ORBITAL_STATION"
	WaypointTypeJumpGate       WaypointType = "JUMP_GATE"
	WaypointTypeAsteroidField  WaypointType = "ASTEROID_FIELD"
	WaypointTypeNebula         WaypointType = "NEBULA"
	WaypointTypeDebrisField    WaypointType = "DEBRIS_FIELD"
	WaypointTypeGravityWell    WaypointType = "GRAVITY_WELL"
)

var waypointTypes = newEnum("WaypointType",
	WaypointTypePlanet,
	WaypointTypeGasGiant,
	WaypointTypeMoon,
	WaypointTypeOrbitalStation,
	WaypointTypeJumpGate,
	WaypointTypeAsteroidField,
	WaypointTypeNebula,
	WaypointTypeDebrisField,
	WaypointTypeGravityWell,
)

// ParseWaypointType returns the WaypointType for s or an *UnknownVariantError.
func ParseWaypointType(s string) (WaypointType, error) { return waypointTypes.parse(s) }

// WaypointTypeValues lists every known WaypointType in declaration order.
func WaypointTypeValues() []WaypointType { return waypointTypes.list() }

func (v *WaypointType) UnmarshalJSON(b []byte) error { return waypointTypes.decode(b, v) }

// Deposit is a resource a mining mount or survey can target.
type Deposit string

const (
	DepositQuartzSand      Deposit = "QUARTZ_SAND"
	DepositSiliconCrystals Deposit = "SILICON_CRYSTALS"
	DepositPreciousStones  Deposit = "PRECIOUS_STONES"
	DepositIceWater        Deposit = "ICE_WATER"
	DepositAmmoniaIce      Deposit = "AMMONIA_ICE"
	DepositIronOre         Deposit = "IRON_ORE"
	DepositCopperOre       Deposit = "COPPER_ORE"
	DepositSilverOre       Deposit = "SILVER_ORE"
	DepositAluminumOre     Deposit = "ALUMINUM_ORE"
	DepositGoldOre         Deposit = "GOLD_ORE"
	DepositPlatinumOre     Deposit = "PLATINUM_ORE"
	DepositDiamonds        Deposit = "DIAMONDS"
	DepositUraniteOre      Deposit = "URANITE_ORE"
	DepositMeritiumOre     Deposit = "MERITIUM_ORE"
)

var deposits = newEnum("Deposit",
	DepositQuartzSand,
	DepositSiliconCrystals,
	DepositPreciousStones,
	DepositIceWater,
	DepositAmmoniaIce,
	DepositIronOre,
	DepositCopperOre,
	DepositSilverOre,
	DepositAluminumOre,
	DepositGoldOre,
	DepositPlatinumOre,
	DepositDiamonds,
	DepositUraniteOre,
	DepositMeritiumOre,
)

// ParseDeposit returns the Deposit for s or an *UnknownVariantError.
func ParseDeposit(s string) (Deposit, error) { return deposits.parse(s) }

// DepositValues lists every known Deposit in declaration order.
func DepositValues() []Deposit { return deposits.list() }

func (v *Deposit) UnmarshalJSON(b []byte) error { return deposits.decode(b, v) }

// SupplyLevel is a market's stock of a trade good.
type SupplyLevel string

const (
	SupplyScarce   SupplyLevel = "SCARCE"
	SupplyLimited  SupplyLevel = "LIMITED"
	SupplyModerate SupplyLevel = "MODERATE"
	SupplyHigh     SupplyLevel = "HIGH"
	SupplyAbundant SupplyLevel = "ABUNDANT"
)

var supplyLevels = newEnum("SupplyLevel",
	SupplyScarce,
	SupplyLimited,
	SupplyModerate,
	SupplyHigh,
	SupplyAbundant,
)

// ParseSupplyLevel returns the SupplyLevel for s or an *UnknownVariantError.
func ParseSupplyLevel(s string) (SupplyLevel, error) { return supplyLevels.parse(s) }

// SupplyLevelValues lists every known SupplyLevel in declaration order.
func SupplyLevelValues() []SupplyLevel { return supplyLevels.list() }

func (v *SupplyLevel) UnmarshalJSON(b []byte) error { return supplyLevels.decode(b, v) }

// FactionSymbol identifies a faction. Only the starting factions accept
// new agents; FactionCosmic is the default.
type FactionSymbol string

const (
	FactionCosmic   FactionSymbol = "COSMIC"
	FactionVoid     FactionSymbol = "VOID"
	FactionGalactic FactionSymbol = "GALACTIC"
	FactionQuantum  FactionSymbol = "QUANTUM"
	FactionDominion FactionSymbol = "DOMINION"
	FactionAstro    FactionSymbol = "ASTRO"
	FactionCorsairs FactionSymbol = "CORSAIRS"
	FactionObsidian FactionSymbol = "OBSIDIAN"
	FactionAegis    FactionSymbol = "AEGIS"
	FactionUnited   FactionSymbol = "UNITED"
	FactionSolitary FactionSymbol = "SOLITARY"
	FactionCobalt   FactionSymbol = "COBALT"
	FactionOmega    FactionSymbol = "OMEGA"
	FactionEcho     FactionSymbol = "ECHO"
	FactionLords    FactionSymbol = "LORDS"
	FactionCult     FactionSymbol = "CULT"
	FactionAncients FactionSymbol = "ANCIENTS"
	FactionShadow   FactionSymbol = "SHADOW"
	FactionEthereal FactionSymbol = "ETHEREAL"
)

var factionSymbols = newEnum("FactionSymbol",
	FactionCosmic,
	FactionVoid,
	FactionGalactic,
	FactionQuantum,
	FactionDominion,
	FactionAstro,
	FactionCorsairs,
	FactionObsidian,
	FactionAegis,
	FactionUnited,
	FactionSolitary,
	FactionCobalt,
	FactionOmega,
	FactionEcho,
	FactionLords,
	FactionCult,
	FactionAncients,
	FactionShadow,
	FactionEthereal,
)

// ParseFactionSymbol returns the FactionSymbol for s or an *UnknownVariantError.
func ParseFactionSymbol(s string) (FactionSymbol, error) { return factionSymbols.parse(s) }

// FactionSymbolValues lists every known FactionSymbol in declaration order.
func FactionSymbolValues() []FactionSymbol { return factionSymbols.list() }

func (v *FactionSymbol) UnmarshalJSON(b []byte) error { return factionSymbols.decode(b, v) }
