package schema

// TradeSymbol identifies a trade good. Ship components are tradeable too,
// so the set overlaps with the engine, module, mount and reactor symbols.
type TradeSymbol string

const (
	TradePreciousStones          TradeSymbol = "PRECIOUS_STONES"
	TradeQuartzSand              TradeSymbol = "QUARTZ_SAND"
	TradeSiliconCrystals         TradeSymbol = "SILICON_CRYSTALS"
	TradeAmmoniaIce              TradeSymbol = "AMMONIA_ICE"
	TradeLiquidHydrogen          TradeSymbol = "LIQUID_HYDROGEN"
	TradeLiquidNitrogen          TradeSymbol = "LIQUID_NITROGEN"
	TradeIceWater                TradeSymbol = "ICE_WATER"
	TradeExoticMatter            TradeSymbol = "EXOTIC_MATTER"
	TradeAdvancedCircuitry       TradeSymbol = "ADVANCED_CIRCUITRY"
	TradeGravitonEmitters        TradeSymbol = "GRAVITON_EMITTERS"
	TradeIron                    TradeSymbol = "IRON"
	TradeIronOre                 TradeSymbol = "IRON_ORE"
	TradeCopper                  TradeSymbol = "COPPER"
	TradeCopperOre               TradeSymbol = "COPPER_ORE"
	TradeAluminum                TradeSymbol = "ALUMINUM"
	TradeAluminumOre             TradeSymbol = "ALUMINUM_ORE"
	TradeSilver                  TradeSymbol = "SILVER"
	TradeSilverOre               TradeSymbol = "SILVER_ORE"
	TradeGold                    TradeSymbol = "GOLD"
	TradeGoldOre                 TradeSymbol = "GOLD_ORE"
	TradePlatinum                TradeSymbol = "PLATINUM"
	TradePlatinumOre             TradeSymbol = "PLATINUM_ORE"
	TradeDiamonds                TradeSymbol = "DIAMONDS"
	TradeUranite                 TradeSymbol = "URANITE"
	TradeUraniteOre              TradeSymbol = "URANITE_ORE"
	TradeMeritium                TradeSymbol = "MERITIUM"
	TradeMeritiumOre             TradeSymbol = "MERITIUM_ORE"
	TradeHydrocarbon             TradeSymbol = "HYDROCARBON"
	TradeAntimatter              TradeSymbol = "ANTIMATTER"
	TradeFertilizers             TradeSymbol = "FERTILIZERS"
	TradeFabrics                 TradeSymbol = "FABRICS"
	TradeFood                    TradeSymbol = "FOOD"
	TradeJewelry                 TradeSymbol = "JEWELRY"
	TradeMachinery               TradeSymbol = "MACHINERY"
	TradeFirearms                TradeSymbol = "FIREARMS"
	TradeAssaultRifles           TradeSymbol = "ASSAULT_RIFLES"
	TradeMilitaryEquipment       TradeSymbol = "MILITARY_EQUIPMENT"
	TradeExplosives              TradeSymbol = "EXPLOSIVES"
	TradeLabInstruments          TradeSymbol = "LAB_INSTRUMENTS"
	TradeAmmunition              TradeSymbol = "AMMUNITION"
	TradeElectronics             TradeSymbol = "ELECTRONICS"
	TradeShipPlating             TradeSymbol = "SHIP_PLATING"
	TradeEquipment               TradeSymbol = "EQUIPMENT"
	TradeFuel                    TradeSymbol = "FUEL"
	TradeMedicine                TradeSymbol = "MEDICINE"
	TradeDrugs                   TradeSymbol = "DRUGS"
	TradeClothing                TradeSymbol = "CLOTHING"
	TradeMicroprocessors         TradeSymbol = "MICROPROCESSORS"
	TradePlastics                TradeSymbol = "PLASTICS"
	TradePolynucleotides         TradeSymbol = "POLYNUCLEOTIDES"
	TradeBiocomposites           TradeSymbol = "BIOCOMPOSITES"
	TradeNanobots                TradeSymbol = "NANOBOTS"
	TradeAIMainframes            TradeSymbol = "AI_MAINFRAMES"
	TradeQuantumDrives           TradeSymbol = "QUANTUM_DRIVES"
	TradeRoboticDrones           TradeSymbol = "ROBOTIC_DRONES"
	TradeCyberImplants           TradeSymbol = "CYBER_IMPLANTS"
	TradeGeneTherapeutics        TradeSymbol = "GENE_THERAPEUTICS"
	TradeNeuralChips             TradeSymbol = "NEURAL_CHIPS"
	TradeMoodRegulators          TradeSymbol = "MOOD_REGULATORS"
	TradeViralAgents             TradeSymbol = "VIRAL_AGENTS"
	TradeMicroFusionGenerators   TradeSymbol = "MICRO_FUSION_GENERATORS"
	TradeSupergrains             TradeSymbol = "SUPERGRAINS"
	TradeLaserRifles             TradeSymbol = "LASER_RIFLES"
	TradeHolographics            TradeSymbol = "HOLOGRAPHICS"
	TradeShipSalvage             TradeSymbol = "SHIP_SALVAGE"
	TradeRelicTech               TradeSymbol = "RELIC_TECH"
	TradeNovelLifeforms          TradeSymbol = "NOVEL_LIFEFORMS"
	TradeBotanicalSpecimens      TradeSymbol = "BOTANICAL_SPECIMENS"
	TradeCulturalArtifacts       TradeSymbol = "CULTURAL_ARTIFACTS"
	TradeReactorSolarI           TradeSymbol = "REACTOR_SOLAR_I"
	TradeReactorFusionI          TradeSymbol = "REACTOR_FUSION_I"
	TradeReactorFissionI         TradeSymbol = "REACTOR_FISSION_I"
	TradeReactorChemicalI        TradeSymbol = "REACTOR_CHEMICAL_I"
	TradeReactorAntimatterI      TradeSymbol = "REACTOR_ANTIMATTER_I"
	TradeEngineImpulseDriveI     TradeSymbol = "ENGINE_IMPULSE_DRIVE_I"
	TradeEngineIonDriveI         TradeSymbol = "ENGINE_ION_DRIVE_I"
	TradeEngineIonDriveII        TradeSymbol = "ENGINE_ION_DRIVE_II"
	TradeEngineHyperDriveI       TradeSymbol = "ENGINE_HYPER_DRIVE_I"
	TradeModuleMineralProcessorI TradeSymbol = "MODULE_MINERAL_PROCESSOR_I"
	TradeModuleCargoHoldI        TradeSymbol = "MODULE_CARGO_HOLD_I"
	TradeModuleCrewQuartersI     TradeSymbol = "MODULE_CREW_QUARTERS_I"
	TradeModuleEnvoyQuartersI    TradeSymbol = "MODULE_ENVOY_QUARTERS_I"
	TradeModulePassengerCabinI   TradeSymbol = "MODULE_PASSENGER_CABIN_I"
	TradeModuleMicroRefineryI    TradeSymbol = "MODULE_MICRO_REFINERY_I"
	TradeModuleOreRefineryI      TradeSymbol = "MODULE_ORE_REFINERY_I"
	TradeModuleFuelRefineryI     TradeSymbol = "MODULE_FUEL_REFINERY_I"
	TradeModuleScienceLabI       TradeSymbol = "MODULE_SCIENCE_LAB_I"
	TradeModuleJumpDriveI        TradeSymbol = "MODULE_JUMP_DRIVE_I"
	TradeModuleJumpDriveII       TradeSymbol = "MODULE_JUMP_DRIVE_II"
	TradeModuleJumpDriveIII      TradeSymbol = "MODULE_JUMP_DRIVE_III"
	TradeModuleWarpDriveI        TradeSymbol = "MODULE_WARP_DRIVE_I"
	TradeModuleWarpDriveII       TradeSymbol = "MODULE_WARP_DRIVE_II"
	TradeModuleWarpDriveIII      TradeSymbol = "MODULE_WARP_DRIVE_III"
	TradeModuleShieldGeneratorI  TradeSymbol = "MODULE_SHIELD_GENERATOR_I"
	TradeModuleShieldGeneratorII TradeSymbol = "MODULE_SHIELD_GENERATOR_II"
	TradeMountGasSiphonI         TradeSymbol = "MOUNT_GAS_SIPHON_I"
	TradeMountGasSiphonII        TradeSymbol = "MOUNT_GAS_SIPHON_II"
	TradeMountGasSiphonIII       TradeSymbol = "MOUNT_GAS_SIPHON_III"
	TradeMountSurveyorI          TradeSymbol = "MOUNT_SURVEYOR_I"
	TradeMountSurveyorII         TradeSymbol = "MOUNT_SURVEYOR_II"
	TradeMountSurveyorIII        TradeSymbol = "MOUNT_SURVEYOR_III"
	TradeMountSensorArrayI       TradeSymbol = "MOUNT_SENSOR_ARRAY_I"
	TradeMountSensorArrayII      TradeSymbol = "MOUNT_SENSOR_ARRAY_II"
	TradeMountSensorArrayIII     TradeSymbol = "MOUNT_SENSOR_ARRAY_III"
	TradeMountMiningLaserI       TradeSymbol = "MOUNT_MINING_LASER_I"
	TradeMountMiningLaserII      TradeSymbol = "MOUNT_MINING_LASER_II"
	TradeMountMiningLaserIII     TradeSymbol = "MOUNT_MINING_LASER_III"
	TradeMountLaserCannonI       TradeSymbol = "MOUNT_LASER_CANNON_I"
	TradeMountMissileLauncherI   TradeSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	TradeMountTurretI            TradeSymbol = "MOUNT_TURRET_I"
)

var tradeSymbols = newEnum("TradeSymbol",
	TradePreciousStones,
	TradeQuartzSand,
	TradeSiliconCrystals,
	TradeAmmoniaIce,
	TradeLiquidHydrogen,
	TradeLiquidNitrogen,
	TradeIceWater,
	TradeExoticMatter,
	TradeAdvancedCircuitry,
	TradeGravitonEmitters,
	TradeIron,
	TradeIronOre,
	TradeCopper,
	TradeCopperOre,
	TradeAluminum,
	TradeAluminumOre,
	TradeSilver,
	TradeSilverOre,
	TradeGold,
	TradeGoldOre,
	TradePlatinum,
	TradePlatinumOre,
	TradeDiamonds,
	TradeUranite,
	TradeUraniteOre,
	TradeMeritium,
	TradeMeritiumOre,
	TradeHydrocarbon,
	TradeAntimatter,
	TradeFertilizers,
	TradeFabrics,
	TradeFood,
	TradeJewelry,
	TradeMachinery,
	TradeFirearms,
	TradeAssaultRifles,
	TradeMilitaryEquipment,
	TradeExplosives,
	TradeLabInstruments,
	TradeAmmunition,
	TradeElectronics,
	TradeShipPlating,
	TradeEquipment,
	TradeFuel,
	TradeMedicine,
	TradeDrugs,
	TradeClothing,
	TradeMicroprocessors,
	TradePlastics,
	TradePolynucleotides,
	TradeBiocomposites,
	TradeNanobots,
	TradeAIMainframes,
	TradeQuantumDrives,
	TradeRoboticDrones,
	TradeCyberImplants,
	TradeGeneTherapeutics,
	TradeNeuralChips,
	TradeMoodRegulators,
	TradeViralAgents,
	TradeMicroFusionGenerators,
	TradeSupergrains,
	TradeLaserRifles,
	TradeHolographics,
	TradeShipSalvage,
	TradeRelicTech,
	TradeNovelLifeforms,
	TradeBotanicalSpecimens,
	TradeCulturalArtifacts,
	TradeReactorSolarI,
	TradeReactorFusionI,
	TradeReactorFissionI,
	TradeReactorChemicalI,
	TradeReactorAntimatterI,
	TradeEngineImpulseDriveI,
	TradeEngineIonDriveI,
	TradeEngineIonDriveII,
	TradeEngineHyperDriveI,
	TradeModuleMineralProcessorI,
	TradeModuleCargoHoldI,
	TradeModuleCrewQuartersI,
	TradeModuleEnvoyQuartersI,
	TradeModulePassengerCabinI,
	TradeModuleMicroRefineryI,
	TradeModuleOreRefineryI,
	TradeModuleFuelRefineryI,
	TradeModuleScienceLabI,
	TradeModuleJumpDriveI,
	TradeModuleJumpDriveII,
	TradeModuleJumpDriveIII,
	TradeModuleWarpDriveI,
	TradeModuleWarpDriveII,
	TradeModuleWarpDriveIII,
	TradeModuleShieldGeneratorI,
	TradeModuleShieldGeneratorII,
	TradeMountGasSiphonI,
	TradeMountGasSiphonII,
	TradeMountGasSiphonIII,
	TradeMountSurveyorI,
	TradeMountSurveyorII,
	TradeMountSurveyorIII,
	TradeMountSensorArrayI,
	TradeMountSensorArrayII,
	TradeMountSensorArrayIII,
	TradeMountMiningLaserI,
	TradeMountMiningLaserII,
	TradeMountMiningLaserIII,
	TradeMountLaserCannonI,
	TradeMountMissileLauncherI,
	TradeMountTurretI,
)

// ParseTradeSymbol returns the TradeSymbol for s or an *UnknownVariantError.
func ParseTradeSymbol(s string) (TradeSymbol, error) { return tradeSymbols.parse(s) }

// TradeSymbolValues lists every known TradeSymbol in declaration order.
func TradeSymbolValues() []TradeSymbol { return tradeSymbols.list() }

func (v *TradeSymbol) UnmarshalJSON(b []byte) error { return tradeSymbols.decode(b, v) }

// WaypointTraitSymbol identifies a waypoint trait.
type WaypointTraitSymbol string

const (
	TraitUncharted             WaypointTraitSymbol = "UNCHARTED"
	TraitMarketplace           WaypointTraitSymbol = "MARKETPLACE"
	TraitShipyard              WaypointTraitSymbol = "SHIPYARD"
	TraitOutpost               WaypointTraitSymbol = "OUTPOST"
	TraitScatteredSettlements  WaypointTraitSymbol = "SCATTERED_SETTLEMENTS"
	TraitSprawlingCities       WaypointTraitSymbol = "SPRAWLING_CITIES"
	TraitMegaStructures        WaypointTraitSymbol = "MEGA_STRUCTURES"
	TraitOvercrowded           WaypointTraitSymbol = "OVERCROWDED"
	TraitHighTech              WaypointTraitSymbol = "HIGH_TECH"
	TraitCorrupt               WaypointTraitSymbol = "CORRUPT"
	TraitBureaucratic          WaypointTraitSymbol = "BUREAUCRATIC"
	TraitTradingHub            WaypointTraitSymbol = "TRADING_HUB"
	TraitIndustrial            WaypointTraitSymbol = "INDUSTRIAL"
	TraitBlackMarket           WaypointTraitSymbol = "BLACK_MARKET"
	TraitResearchFacility      WaypointTraitSymbol = "RESEARCH_FACILITY"
	TraitMilitaryBase          WaypointTraitSymbol = "MILITARY_BASE"
	TraitSurveillanceOutpost   WaypointTraitSymbol = "SURVEILLANCE_OUTPOST"
	TraitExplorationOutpost    WaypointTraitSymbol = "EXPLORATION_OUTPOST"
	TraitMineralDeposits       WaypointTraitSymbol = "MINERAL_DEPOSITS"
	TraitCommonMetalDeposits   WaypointTraitSymbol = "COMMON_METAL_DEPOSITS"
	TraitPreciousMetalDeposits WaypointTraitSymbol = "PRECIOUS_METAL_DEPOSITS"
	TraitRareMetalDeposits     WaypointTraitSymbol = "RARE_METAL_DEPOSITS"
	TraitMethanePools          WaypointTraitSymbol = "METHANE_POOLS"
	TraitIceCrystals           WaypointTraitSymbol = "ICE_CRYSTALS"
	TraitExplosiveGases        WaypointTraitSymbol = "EXPLOSIVE_GASES"
	TraitStrongMagnetosphere   WaypointTraitSymbol = "STRONG_MAGNETOSPHERE"
	TraitVibrantAuroras        WaypointTraitSymbol = "VIBRANT_AURORAS"
	TraitSaltFlats             WaypointTraitSymbol = "SALT_FLATS"
	TraitCanyons               WaypointTraitSymbol = "CANYONS"
	TraitPerpetualDaylight     WaypointTraitSymbol = "PERPETUAL_DAYLIGHT"
	TraitPerpetualOvercast     WaypointTraitSymbol = "PERPETUAL_OVERCAST"
	TraitDrySeabeds            WaypointTraitSymbol = "DRY_SEABEDS"
	TraitMagmaSeas             WaypointTraitSymbol = "MAGMA_SEAS"
	TraitSupervolcanoes        WaypointTraitSymbol = "SUPERVOLCANOES"
	TraitAshClouds             WaypointTraitSymbol = "ASH_CLOUDS"
	TraitVastRuins             WaypointTraitSymbol = "VAST_RUINS"
	TraitMutatedFlora          WaypointTraitSymbol = "MUTATED_FLORA"
	TraitTerraformed           WaypointTraitSymbol = "TERRAFORMED"
	TraitExtremeTemperatures   WaypointTraitSymbol = "EXTREME_TEMPERATURES"
	TraitExtremePressure       WaypointTraitSymbol = "EXTREME_PRESSURE"
	TraitDiverseLife           WaypointTraitSymbol = "DIVERSE_LIFE"
	TraitScarceLife            WaypointTraitSymbol = "SCARCE_LIFE"
	TraitFossils               WaypointTraitSymbol = "FOSSILS"
	TraitWeakGravity           WaypointTraitSymbol = "WEAK_GRAVITY"
	TraitStrongGravity         WaypointTraitSymbol = "STRONG_GRAVITY"
	TraitCrushingGravity       WaypointTraitSymbol = "CRUSHING_GRAVITY"
	TraitToxicAtmosphere       WaypointTraitSymbol = "TOXIC_ATMOSPHERE"
	TraitCorrosiveAtmosphere   WaypointTraitSymbol = "CORROSIVE_ATMOSPHERE"
	TraitBreathableAtmosphere  WaypointTraitSymbol = "BREATHABLE_ATMOSPHERE"
	TraitJovian                WaypointTraitSymbol = "JOVIAN"
	TraitRocky                 WaypointTraitSymbol = "ROCKY"
	TraitVolcanic              WaypointTraitSymbol = "VOLCANIC"
	TraitFrozen                WaypointTraitSymbol = "FROZEN"
	TraitSwamp                 WaypointTraitSymbol = "SWAMP"
	TraitBarren                WaypointTraitSymbol = "BARREN"
	TraitTemperate             WaypointTraitSymbol = "TEMPERATE"
	TraitJungle                WaypointTraitSymbol = "JUNGLE"
	TraitOcean                 WaypointTraitSymbol = "OCEAN"
	TraitStripped              WaypointTraitSymbol = "STRIPPED"
)

var waypointTraitSymbols = newEnum("WaypointTraitSymbol",
	TraitUncharted,
	TraitMarketplace,
	TraitShipyard,
	TraitOutpost,
	TraitScatteredSettlements,
	TraitSprawlingCities,
	TraitMegaStructures,
	TraitOvercrowded,
	TraitHighTech,
	TraitCorrupt,
	TraitBureaucratic,
	TraitTradingHub,
	TraitIndustrial,
	TraitBlackMarket,
	TraitResearchFacility,
	TraitMilitaryBase,
	TraitSurveillanceOutpost,
	TraitExplorationOutpost,
	TraitMineralDeposits,
	TraitCommonMetalDeposits,
	TraitPreciousMetalDeposits,
	TraitRareMetalDeposits,
	TraitMethanePools,
	TraitIceCrystals,
	TraitExplosiveGases,
	TraitStrongMagnetosphere,
	TraitVibrantAuroras,
	TraitSaltFlats,
	TraitCanyons,
	TraitPerpetualDaylight,
	TraitPerpetualOvercast,
	TraitDrySeabeds,
	TraitMagmaSeas,
	TraitSupervolcanoes,
	TraitAshClouds,
	TraitVastRuins,
	TraitMutatedFlora,
	TraitTerraformed,
	TraitExtremeTemperatures,
	TraitExtremePressure,
	TraitDiverseLife,
	TraitScarceLife,
	TraitFossils,
	TraitWeakGravity,
	TraitStrongGravity,
	TraitCrushingGravity,
	TraitToxicAtmosphere,
	TraitCorrosiveAtmosphere,
	TraitBreathableAtmosphere,
	TraitJovian,
	TraitRocky,
	TraitVolcanic,
	TraitFrozen,
	TraitSwamp,
	TraitBarren,
	TraitTemperate,
	TraitJungle,
	TraitOcean,
	TraitStripped,
)

// ParseWaypointTraitSymbol returns the WaypointTraitSymbol for s or an *UnknownVariantError.
func ParseWaypointTraitSymbol(s string) (WaypointTraitSymbol, error) { return waypointTraitSymbols.parse(s) }

// WaypointTraitSymbolValues lists every known WaypointTraitSymbol in declaration order.
func WaypointTraitSymbolValues() []WaypointTraitSymbol { return waypointTraitSymbols.list() }

func (v *WaypointTraitSymbol) UnmarshalJSON(b []byte) error { return waypointTraitSymbols.decode(b, v) }

// FactionTraitSymbol identifies a faction trait.
type FactionTraitSymbol string

const (
	FactionTraitBureaucratic            FactionTraitSymbol = "BUREAUCRATIC"
	FactionTraitSecretive               FactionTraitSymbol = "SECRETIVE"
	FactionTraitCapitalistic            FactionTraitSymbol = "CAPITALISTIC"
	FactionTraitIndustrious             FactionTraitSymbol = "INDUSTRIOUS"
	FactionTraitPeaceful                FactionTraitSymbol = "PEACEFUL"
	FactionTraitDistrustful             FactionTraitSymbol = "DISTRUSTFUL"
	FactionTraitWelcoming               FactionTraitSymbol = "WELCOMING"
	FactionTraitSmugglers               FactionTraitSymbol = "SMUGGLERS"
	FactionTraitScavengers              FactionTraitSymbol = "SCAVENGERS"
	FactionTraitRebellious              FactionTraitSymbol = "REBELLIOUS"
	FactionTraitExiles                  FactionTraitSymbol = "EXILES"
	FactionTraitPirates                 FactionTraitSymbol = "PIRATES"
	FactionTraitRaiders                 FactionTraitSymbol = "RAIDERS"
	FactionTraitClan                    FactionTraitSymbol = "CLAN"
	FactionTraitGuild                   FactionTraitSymbol = "GUILD"
	FactionTraitDominion                FactionTraitSymbol = "DOMINION"
	FactionTraitFringe                  FactionTraitSymbol = "FRINGE"
	FactionTraitForsaken                FactionTraitSymbol = "FORSAKEN"
	FactionTraitIsolated                FactionTraitSymbol = "ISOLATED"
	FactionTraitLocalized               FactionTraitSymbol = "LOCALIZED"
	FactionTraitEstablished             FactionTraitSymbol = "ESTABLISHED"
	FactionTraitNotable                 FactionTraitSymbol = "NOTABLE"
	FactionTraitDominant                FactionTraitSymbol = "DOMINANT"
	FactionTraitInescapable             FactionTraitSymbol = "INESCAPABLE"
	FactionTraitInnovative              FactionTraitSymbol = "INNOVATIVE"
	FactionTraitBold                    FactionTraitSymbol = "BOLD"
	FactionTraitVisionary               FactionTraitSymbol = "VISIONARY"
	FactionTraitCurious                 FactionTraitSymbol = "CURIOUS"
	FactionTraitDaring                  FactionTraitSymbol = "DARING"
	FactionTraitExploratory             FactionTraitSymbol = "EXPLORATORY"
	FactionTraitResourceful             FactionTraitSymbol = "RESOURCEFUL"
	FactionTraitFlexible                FactionTraitSymbol = "FLEXIBLE"
	FactionTraitCooperative             FactionTraitSymbol = "COOPERATIVE"
	FactionTraitUnited                  FactionTraitSymbol = "UNITED"
	FactionTraitStrategic               FactionTraitSymbol = "STRATEGIC"
	FactionTraitIntelligent             FactionTraitSymbol = "INTELLIGENT"
	FactionTraitResearchFocused         FactionTraitSymbol = "RESEARCH_FOCUSED"
	FactionTraitCollaborative           FactionTraitSymbol = "COLLABORATIVE"
	FactionTraitProgressive             FactionTraitSymbol = "PROGRESSIVE"
	FactionTraitMilitaristic            FactionTraitSymbol = "MILITARISTIC"
	FactionTraitTechnologicallyAdvanced FactionTraitSymbol = "TECHNOLOGICALLY_ADVANCED"
	FactionTraitAggressive              FactionTraitSymbol = "AGGRESSIVE"
	FactionTraitImperialistic           FactionTraitSymbol = "IMPERIALISTIC"
	FactionTraitTreasureHunters         FactionTraitSymbol = "TREASURE_HUNTERS"
	FactionTraitDexterous               FactionTraitSymbol = "DEXTEROUS"
	FactionTraitUnpredictable           FactionTraitSymbol = "UNPREDICTABLE"
	FactionTraitBrutal                  FactionTraitSymbol = "BRUTAL"
	FactionTraitFleeting                FactionTraitSymbol = "FLEETING"
	FactionTraitAdaptable               FactionTraitSymbol = "ADAPTABLE"
	FactionTraitSelfSufficient          FactionTraitSymbol = "SELF_SUFFICIENT"
	FactionTraitDefensive               FactionTraitSymbol = "DEFENSIVE"
	FactionTraitProud                   FactionTraitSymbol = "PROUD"
	FactionTraitDiverse                 FactionTraitSymbol = "DIVERSE"
	FactionTraitIndependent             FactionTraitSymbol = "INDEPENDENT"
	FactionTraitSelfInterested          FactionTraitSymbol = "SELF_INTERESTED"
	FactionTraitFragmented              FactionTraitSymbol = "FRAGMENTED"
	FactionTraitCommercial              FactionTraitSymbol = "COMMERCIAL"
	FactionTraitFreeMarkets             FactionTraitSymbol = "FREE_MARKETS"
	FactionTraitEntrepreneurial         FactionTraitSymbol = "ENTREPRENEURIAL"
)

var factionTraitSymbols = newEnum("FactionTraitSymbol",
	FactionTraitBureaucratic,
	FactionTraitSecretive,
	FactionTraitCapitalistic,
	FactionTraitIndustrious,
	FactionTraitPeaceful,
	FactionTraitDistrustful,
	FactionTraitWelcoming,
	FactionTraitSmugglers,
	FactionTraitScavengers,
	FactionTraitRebellious,
	FactionTraitExiles,
	FactionTraitPirates,
	FactionTraitRaiders,
	FactionTraitClan,
	FactionTraitGuild,
	FactionTraitDominion,
	FactionTraitFringe,
	FactionTraitForsaken,
	FactionTraitIsolated,
	FactionTraitLocalized,
	FactionTraitEstablished,
	FactionTraitNotable,
	FactionTraitDominant,
	FactionTraitInescapable,
	FactionTraitInnovative,
	FactionTraitBold,
	FactionTraitVisionary,
	FactionTraitCurious,
	FactionTraitDaring,
	FactionTraitExploratory,
	FactionTraitResourceful,
	FactionTraitFlexible,
	FactionTraitCooperative,
	FactionTraitUnited,
	FactionTraitStrategic,
	FactionTraitIntelligent,
	FactionTraitResearchFocused,
	FactionTraitCollaborative,
	FactionTraitProgressive,
	FactionTraitMilitaristic,
	FactionTraitTechnologicallyAdvanced,
	FactionTraitAggressive,
	FactionTraitImperialistic,
	FactionTraitTreasureHunters,
	FactionTraitDexterous,
	FactionTraitUnpredictable,
	FactionTraitBrutal,
	FactionTraitFleeting,
	FactionTraitAdaptable,
	FactionTraitSelfSufficient,
	FactionTraitDefensive,
	FactionTraitProud,
	FactionTraitDiverse,
	FactionTraitIndependent,
	FactionTraitSelfInterested,
	FactionTraitFragmented,
	FactionTraitCommercial,
	FactionTraitFreeMarkets,
	FactionTraitEntrepreneurial,
)

// ParseFactionTraitSymbol returns the FactionTraitSymbol for s or an *UnknownVariantError.
func ParseFactionTraitSymbol(s string) (FactionTraitSymbol, error) { return factionTraitSymbols.parse(s) }

// FactionTraitSymbolValues lists every known FactionTraitSymbol in declaration order.
func FactionTraitSymbolValues() []FactionTraitSymbol { return factionTraitSymbols.list() }

func (v *FactionTraitSymbol) UnmarshalJSON(b []byte) error { return factionTraitSymbols.decode(b, v) }
