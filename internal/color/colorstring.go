package color

// ColorString holds a piece of text together with the style it should be
// painted in. Colorized reflects the last Paint or Reset call.
type ColorString struct {
	Style     Style
	String    string
	Colorized string

	// Opacity is carried along but not used when painting.
	Opacity float32
}

// NewColorString returns an unpainted ColorString with full opacity.
func NewColorString(style Style, text string) *ColorString {
	return &ColorString{
		Style:   style,
		String:  text,
		Opacity: 1.0,
	}
}

// Paint sets Colorized to String wrapped in the escape codes of Style.
func (c *ColorString) Paint() {
	c.Colorized = c.Style.Color()(c.String)
}

// Reset sets Colorized to String wrapped in reset codes, ignoring Style.
func (c *ColorString) Reset() {
	c.Colorized = Reset(c.String)
}
