package component

// Style is the formatting shared by every component, together with the
// component's children. The zero value has every field unset.
//
// Styles are not inherited from parents here; that is left to whoever renders
// the tree.
type Style struct {
	Bold          Tristate
	Italic        Tristate
	Underlined    Tristate
	Strikethrough Tristate
	Obfuscated    Tristate

	Color      Color
	Font       *Identifier
	Insertion  *string
	ClickEvent *ClickEvent
	HoverEvent *HoverEvent

	Extra []Component
}

// Base gives access to the style of any component.
func (s *Style) Base() *Style {
	return s
}

// Append adds children in order. Nil components are skipped.
func (s *Style) Append(children ...Component) {
	for _, c := range children {
		if c != nil {
			s.Extra = append(s.Extra, c)
		}
	}
}

// Reset explicitly disables every decoration and resets the color, so the
// component renders plain regardless of its parent.
func (s *Style) Reset() {
	s.Bold = False
	s.Italic = False
	s.Underlined = False
	s.Strikethrough = False
	s.Obfuscated = False
	s.Color = Named(Reset)
}

func (s *Style) SetFont(font Identifier) {
	s.Font = &font
}

func (s *Style) SetInsertion(insertion string) {
	s.Insertion = &insertion
}

// HasFormatting reports whether any field other than Extra is set.
func (s Style) HasFormatting() bool {
	return s.Bold.IsSet() || s.Italic.IsSet() || s.Underlined.IsSet() ||
		s.Strikethrough.IsSet() || s.Obfuscated.IsSet() || s.Color.IsSet() ||
		s.Font != nil || s.Insertion != nil || s.ClickEvent != nil || s.HoverEvent != nil
}

// Equal reports whether both styles, children included, match field by field.
// An unset flag never equals an explicit false.
func (s Style) Equal(o Style) bool {
	if s.Bold != o.Bold || s.Italic != o.Italic || s.Underlined != o.Underlined ||
		s.Strikethrough != o.Strikethrough || s.Obfuscated != o.Obfuscated ||
		s.Color != o.Color {
		return false
	}
	if (s.Font == nil) != (o.Font == nil) || s.Font != nil && *s.Font != *o.Font {
		return false
	}
	if (s.Insertion == nil) != (o.Insertion == nil) || s.Insertion != nil && *s.Insertion != *o.Insertion {
		return false
	}
	if (s.ClickEvent == nil) != (o.ClickEvent == nil) || s.ClickEvent != nil && *s.ClickEvent != *o.ClickEvent {
		return false
	}
	if !s.HoverEvent.equal(o.HoverEvent) {
		return false
	}
	return equalList(s.Extra, o.Extra)
}

func (s Style) clone() Style {
	out := s
	if s.Font != nil {
		font := *s.Font
		out.Font = &font
	}
	if s.Insertion != nil {
		insertion := *s.Insertion
		out.Insertion = &insertion
	}
	if s.ClickEvent != nil {
		click := *s.ClickEvent
		out.ClickEvent = &click
	}
	out.HoverEvent = s.HoverEvent.clone()
	out.Extra = cloneList(s.Extra)
	return out
}
