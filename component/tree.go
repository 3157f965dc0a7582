package component

import (
	"github.com/valyala/bytebufferpool"
)

// Equal reports whether a and b are structurally identical: same variant,
// same fields, same style and equal children in the same order.
func Equal(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Text:
		y, ok := b.(*Text)
		return ok && x.Content == y.Content && x.Style.Equal(y.Style)
	case *Translatable:
		y, ok := b.(*Translatable)
		if !ok || x.Key != y.Key || !equalList(x.With, y.With) {
			return false
		}
		if (x.Fallback == nil) != (y.Fallback == nil) || x.Fallback != nil && *x.Fallback != *y.Fallback {
			return false
		}
		return x.Style.Equal(y.Style)
	case *Score:
		y, ok := b.(*Score)
		return ok && x.Name == y.Name && x.Objective == y.Objective && x.Value == y.Value &&
			x.Style.Equal(y.Style)
	case *Selector:
		y, ok := b.(*Selector)
		return ok && x.Pattern == y.Pattern && Equal(x.Separator, y.Separator) && x.Style.Equal(y.Style)
	case *Keybind:
		y, ok := b.(*Keybind)
		return ok && x.ID == y.ID && x.Style.Equal(y.Style)
	case *NBT:
		y, ok := b.(*NBT)
		return ok && x.Path == y.Path && x.Source == y.Source && x.Interpret == y.Interpret &&
			Equal(x.Separator, y.Separator) && x.Style.Equal(y.Style)
	}
	return false
}

func equalList(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of c that shares no memory with it.
func Clone(c Component) Component {
	switch x := c.(type) {
	case *Text:
		return &Text{Content: x.Content, Style: x.Style.clone()}
	case *Translatable:
		out := &Translatable{Key: x.Key, With: cloneList(x.With), Style: x.Style.clone()}
		if x.Fallback != nil {
			out.SetFallback(*x.Fallback)
		}
		return out
	case *Score:
		return &Score{Name: x.Name, Objective: x.Objective, Value: x.Value, Style: x.Style.clone()}
	case *Selector:
		return &Selector{Pattern: x.Pattern, Separator: Clone(x.Separator), Style: x.Style.clone()}
	case *Keybind:
		return &Keybind{ID: x.ID, Style: x.Style.clone()}
	case *NBT:
		return &NBT{
			Path:      x.Path,
			Source:    x.Source,
			Interpret: x.Interpret,
			Separator: Clone(x.Separator),
			Style:     x.Style.clone(),
		}
	}
	return nil
}

func cloneList(list []Component) []Component {
	if list == nil {
		return nil
	}
	out := make([]Component, len(list))
	for i, c := range list {
		out[i] = Clone(c)
	}
	return out
}

// Walk visits c and its descendants depth first, parents before children.
// Translation arguments and separators are visited before extra. Returning
// false from fn skips the descendants of that node.
func Walk(c Component, fn func(Component) bool) {
	if c == nil || !fn(c) {
		return
	}

	switch x := c.(type) {
	case *Translatable:
		for _, arg := range x.With {
			Walk(arg, fn)
		}
	case *Selector:
		Walk(x.Separator, fn)
	case *NBT:
		Walk(x.Separator, fn)
	}

	for _, child := range c.Base().Extra {
		Walk(child, fn)
	}
}

// Plain flattens the tree to unstyled text. Translation keys are written
// verbatim followed by their arguments in parentheses, unresolved scores by
// their holder name.
func Plain(c Component) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePlain(buf, c)
	return buf.String()
}

func writePlain(buf *bytebufferpool.ByteBuffer, c Component) {
	switch x := c.(type) {
	case nil:
		return
	case *Text:
		_, _ = buf.WriteString(x.Content)
	case *Translatable:
		if x.Fallback != nil && len(x.With) == 0 {
			_, _ = buf.WriteString(*x.Fallback)
			break
		}
		_, _ = buf.WriteString(x.Key)
		if len(x.With) > 0 {
			_ = buf.WriteByte('(')
			for i, arg := range x.With {
				if i > 0 {
					_, _ = buf.WriteString(", ")
				}
				writePlain(buf, arg)
			}
			_ = buf.WriteByte(')')
		}
	case *Score:
		if x.Value != "" {
			_, _ = buf.WriteString(x.Value)
		} else {
			_, _ = buf.WriteString(x.Name)
		}
	case *Selector:
		_, _ = buf.WriteString(x.Pattern)
	case *Keybind:
		_, _ = buf.WriteString(x.ID)
	case *NBT:
		_, _ = buf.WriteString(x.Path)
	}

	for _, child := range c.Base().Extra {
		writePlain(buf, child)
	}
}
