package constants

const (
	BrandVisa            = "Visa"
	BrandMasterCard      = "MasterCard"
	BrandAmericanExpress = "American Express"
	BrandDiscover        = "Discover"
	BrandDinersClub      = "Diners Club"
	BrandJCB             = "JCB"
	BrandVoyager         = "Voyager"
	BrandEnRoute         = "EnRoute"
	BrandHiperCard       = "HiperCard"
	BrandAura            = "Aura"
)

const (
	MsgInvalidFormat   = "invalid format"
	MsgUnknownBrand    = "brand not recognized or invalid number"
	MsgChecksumFailure = "failed Luhn checksum validation"
)

const (
	DefaultRunAddr  = ":8080"
	DefaultLogLevel = "info"
	CLILogLevel     = "warn"
)
