package data

// Category identifiers as supplied by the catalog (item group IDs).
const (
	// Turrets
	CategoryEnergyWeapon     int32 = 53
	CategoryProjectileWeapon int32 = 55
	CategoryHybridWeapon     int32 = 74
	CategoryPrecursorWeapon  int32 = 1986

	// Missile launchers
	CategoryLauncherCruise       int32 = 506
	CategoryLauncherRocket       int32 = 507
	CategoryLauncherTorpedo      int32 = 508
	CategoryLauncherLight        int32 = 509
	CategoryLauncherHeavy        int32 = 510
	CategoryLauncherRapidLight   int32 = 511
	CategoryLauncherXLTorpedo    int32 = 524
	CategoryLauncherHeavyAssault int32 = 771
	CategoryLauncherRapidHeavy   int32 = 1245
	CategoryLauncherRapidTorpedo int32 = 1673

	// Damage modules (accumulating bonuses)
	CategoryGyrostabilizer        int32 = 59
	CategoryHeatSink              int32 = 205
	CategoryMagneticFieldStab     int32 = 302
	CategoryBallisticControl      int32 = 367
	CategoryEntropicRadiationSink int32 = 1988
	CategoryDroneDamageModule     int32 = 645

	// Tank
	CategoryShieldExtender     int32 = 38
	CategoryShieldBooster      int32 = 40
	CategoryDamageControl      int32 = 60
	CategoryArmorRepairer      int32 = 62
	CategoryHullRepairer       int32 = 63
	CategoryShieldHardener     int32 = 77
	CategoryReinforcedBulkhead int32 = 78
	CategoryArmorCoating       int32 = 98
	CategoryShieldAmplifier    int32 = 295
	CategoryArmorMembrane      int32 = 326
	CategoryArmorHardener      int32 = 328
	CategoryArmorPlate         int32 = 329

	// Electronics and engineering
	CategoryPropulsion        int32 = 46
	CategorySignalAmplifier   int32 = 210
	CategorySensorBooster     int32 = 212
	CategoryNanofiber         int32 = 763
	CategoryOverdriveInjector int32 = 764

	// Rigs
	CategoryRigArmor            int32 = 773
	CategoryRigShield           int32 = 774
	CategoryRigEnergyWeapon     int32 = 775
	CategoryRigHybridWeapon     int32 = 776
	CategoryRigProjectileWeapon int32 = 777
	CategoryRigDrones           int32 = 778
	CategoryRigLauncher         int32 = 779
	CategoryRigNavigation       int32 = 781
	CategoryRigElectronics      int32 = 786

	// Strategic cruiser subsystems
	CategorySubsystemDefensive  int32 = 954
	CategorySubsystemOffensive  int32 = 956
	CategorySubsystemPropulsion int32 = 957
	CategorySubsystemCore       int32 = 958

	CategoryCombatDrone int32 = 100
)
