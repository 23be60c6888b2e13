// Package platform provides the lookup tables that map GOG platform and language
// names to the bitmasks used for installer selection.
package platform

// Platform bits.
const (
	// Windows is the bit for Windows installers.
	Windows uint = 1 << iota
	// Mac is the bit for macOS installers.
	Mac
	// Linux is the bit for Linux installers.
	Linux
)

// Architecture tags used by v2 depots (osBitness).
const (
	// Arch32 selects 32-bit depots.
	Arch32 = "32"
	// Arch64 selects 64-bit depots.
	Arch64 = "64"
	// AnyArch is the wildcard tag upstream uses for depots valid on every architecture.
	AnyArch = "*"
)

// AllKeyword selects every entry of a table when parsing a selection.
const AllKeyword = "all"

// Option is one entry of a lookup table.
type Option struct {
	Value   uint
	Code    string
	Name    string
	Aliases []string
}

// Platforms is the platform lookup table.
var Platforms = []Option{
	{Windows, "windows", "Windows", []string{"w", "win"}},
	{Mac, "mac", "Mac", []string{"m", "osx", "macos", "darwin"}},
	{Linux, "linux", "Linux", []string{"l", "lin"}},
}

// Languages is the language lookup table. The codes are the ones the
// product-info API uses in the "language" field of download entries.
var Languages = []Option{
	{1 << 0, "en", "English", []string{"eng", "english", "en-us", "en_us"}},
	{1 << 1, "de", "German", []string{"deu", "ger", "german", "de-de"}},
	{1 << 2, "fr", "French", []string{"fra", "fre", "french", "fr-fr"}},
	{1 << 3, "pl", "Polish", []string{"pol", "polish", "pl-pl"}},
	{1 << 4, "ru", "Russian", []string{"rus", "russian", "ru-ru"}},
	{1 << 5, "cn", "Chinese", []string{"zh", "zho", "chi", "chinese", "zh-cn", "zh-hans"}},
	{1 << 6, "cz", "Czech", []string{"cs", "cze", "ces", "czech", "cs-cz"}},
	{1 << 7, "es", "Spanish", []string{"spa", "spanish", "es-es"}},
	{1 << 8, "hu", "Hungarian", []string{"hun", "hungarian", "hu-hu"}},
	{1 << 9, "it", "Italian", []string{"ita", "italian", "it-it"}},
	{1 << 10, "jp", "Japanese", []string{"ja", "jpn", "japanese", "ja-jp"}},
	{1 << 11, "tr", "Turkish", []string{"tur", "turkish", "tr-tr"}},
	{1 << 12, "pt", "Portuguese", []string{"por", "portuguese", "pt-pt"}},
	{1 << 13, "ko", "Korean", []string{"kor", "korean", "ko-kr"}},
	{1 << 14, "nl", "Dutch", []string{"nld", "dut", "dutch", "nl-nl"}},
	{1 << 15, "sv", "Swedish", []string{"swe", "swedish", "sv-se"}},
	{1 << 16, "no", "Norwegian", []string{"nor", "norwegian", "nb-no"}},
	{1 << 17, "da", "Danish", []string{"dan", "danish", "da-dk"}},
	{1 << 18, "fi", "Finnish", []string{"fin", "finnish", "fi-fi"}},
	{1 << 19, "br", "Brazilian Portuguese", []string{"pt-br", "pt_br", "brazilian"}},
	{1 << 20, "sk", "Slovak", []string{"slk", "slo", "slovak", "sk-sk"}},
	{1 << 21, "bl", "Bulgarian", []string{"bg", "bul", "bulgarian", "bg-bg"}},
	{1 << 22, "uk", "Ukrainian", []string{"ukr", "ukrainian", "uk-ua"}},
	{1 << 23, "es_mx", "Spanish (Latin American)", []string{"es-mx", "latam"}},
	{1 << 24, "ar", "Arabic", []string{"ara", "arabic", "ar-sa"}},
	{1 << 25, "ro", "Romanian", []string{"ron", "rum", "romanian", "ro-ro"}},
	{1 << 26, "he", "Hebrew", []string{"heb", "hebrew", "he-il"}},
	{1 << 27, "th", "Thai", []string{"tha", "thai", "th-th"}},
}
