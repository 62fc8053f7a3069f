package constants

const (
	// The namespace prepended to the formal id of every pack from the vendor.
	VendorNamespace = "VanillaTweaks"
	DefaultBaseUrl  = "https://vanillatweaks.net"
	// The game version the vendor catalogs are published for.
	DefaultGameVersion = "1.16"
	// Timeout in seconds of a single request to the vendor.
	DefaultTimeout = 30

	PackDBFile     = "packdb.json"
	PackDBLockFile = "packdb.lock"
	ConfigFile     = "config.toml"

	DatapacksDir       = "datapacks"
	LevelDatFile       = "level.dat"
	InstalledIndex     = "mcpkg.json"
	ZipPathSuffix      = ".zip"
	DefaultPackVersion = "0.0.0"

	// The file name of a pack in a vendor bundle, e.g. 'back to blocks v1.0.3 (MC 1.16).zip'.
	PackFilenamePattern = `^(?P<name>.+?) v(?P<version>\d+(?:\.\d+)*)`

	CategoryUrlPattern = "%s/assets/resources/json/%s/%scategories.json"
	ZipRequestPattern  = "%s/assets/server/zip%ss.php"
)
