package domain

// DefaultBio is the placeholder bio every new account starts with.
const DefaultBio = "Nouvelle bio"

// DefaultStyle is the colour pair applied to profiles that never customised
// their colours.
var DefaultStyle = Style{Background: "#ffffff", Text: "#000000"}

// Style is the colour pair of a public profile page. The JSON tags match
// the on-disk db format and the customise form field names.
type Style struct {
	Background string `json:"bgColor"`
	Text       string `json:"textColor"`
}

// Account is a registered user: credentials plus profile content. The
// username is the unique key and never changes after registration; accounts
// are never deleted.
type Account struct {
	Username       string
	PasswordDigest string // hex sha256, never plaintext
	Bio            string
	Style          *Style // nil until the owner customises colours
}

// EffectiveStyle returns the account style, or the default pair when unset.
func (a Account) EffectiveStyle() Style {
	if a.Style == nil {
		return DefaultStyle
	}
	return *a.Style
}
