package component

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

var ErrNilComponent = errors.New("nil component")

// Marshal encodes c in canonical object form. Keys are written in a fixed
// order and unset fields are left out entirely.
//
// Strings are assumed to be valid UTF-8. Invalid bytes are written as U+FFFD,
// so such text does not survive a round trip.
func (c *Codec) Marshal(comp Component) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	e := encoder{codec: c, buf: buf}
	if err := e.component(comp); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

type encoder struct {
	codec *Codec
	buf   *bytebufferpool.ByteBuffer
}

// object tracks whether a separator is needed before the next key.
type object struct {
	e     *encoder
	empty bool
}

func (e *encoder) begin() *object {
	_ = e.buf.WriteByte('{')
	return &object{e: e, empty: true}
}

func (o *object) key(name string) {
	if !o.empty {
		_ = o.e.buf.WriteByte(',')
	}
	o.empty = false
	o.e.str(name)
	_ = o.e.buf.WriteByte(':')
}

func (o *object) end() {
	_ = o.e.buf.WriteByte('}')
}

func (o *object) str(name, value string) {
	o.key(name)
	o.e.str(value)
}

func (o *object) boolean(name string, value Tristate) {
	if !value.IsSet() {
		return
	}
	o.key(name)
	if value == True {
		_, _ = o.e.buf.WriteString("true")
	} else {
		_, _ = o.e.buf.WriteString("false")
	}
}

func (o *object) component(name string, c Component) error {
	o.key(name)
	if err := o.e.component(c); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (o *object) list(name string, list []Component) error {
	o.key(name)
	_ = o.e.buf.WriteByte('[')
	for i, c := range list {
		if i > 0 {
			_ = o.e.buf.WriteByte(',')
		}
		if err := o.e.component(c); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
	}
	_ = o.e.buf.WriteByte(']')
	return nil
}

func (e *encoder) component(c Component) error {
	if c == nil {
		return ErrNilComponent
	}

	o := e.begin()
	switch x := c.(type) {
	case *Text:
		o.str("text", x.Content)
	case *Translatable:
		o.str("translate", x.Key)
		if x.Fallback != nil {
			o.str("fallback", *x.Fallback)
		}
		if len(x.With) > 0 {
			if err := o.list("with", x.With); err != nil {
				return err
			}
		}
	case *Score:
		o.key("score")
		score := e.begin()
		score.str("name", x.Name)
		score.str("objective", x.Objective)
		if x.Value != "" {
			score.str("value", x.Value)
		}
		score.end()
	case *Selector:
		o.str("selector", x.Pattern)
		if x.Separator != nil {
			if err := o.component("separator", x.Separator); err != nil {
				return err
			}
		}
	case *Keybind:
		o.str("keybind", x.ID)
	case *NBT:
		o.str("nbt", x.Path)
		switch x.Source.Kind {
		case BlockSource, EntitySource, StorageSource:
			o.str(string(x.Source.Kind), x.Source.Target)
		default:
			return fmt.Errorf("nbt source kind %q is not one of block, entity or storage", x.Source.Kind)
		}
		o.boolean("interpret", x.Interpret)
		if x.Separator != nil {
			if err := o.component("separator", x.Separator); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported component type %T", c)
	}

	if err := e.style(o, c.Base()); err != nil {
		return err
	}
	o.end()
	return nil
}

func (e *encoder) style(o *object, s *Style) error {
	o.boolean("bold", s.Bold)
	o.boolean("italic", s.Italic)
	o.boolean("underlined", s.Underlined)
	o.boolean("strikethrough", s.Strikethrough)
	o.boolean("obfuscated", s.Obfuscated)

	if s.Color.IsSet() {
		color := s.Color
		if e.codec.legacy {
			color = color.Nearest()
		}
		o.str("color", color.String())
	}
	if s.Font != nil && !e.codec.legacy {
		o.str("font", s.Font.String())
	}
	if s.Insertion != nil {
		o.str("insertion", *s.Insertion)
	}
	if s.ClickEvent != nil {
		if err := e.click(o, s.ClickEvent); err != nil {
			return err
		}
	}
	if s.HoverEvent != nil {
		if err := e.hover(o, s.HoverEvent); err != nil {
			return err
		}
	}
	if len(s.Extra) > 0 {
		if err := o.list("extra", s.Extra); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) click(o *object, click *ClickEvent) error {
	if !click.Action.valid() {
		return fmt.Errorf("clickEvent: unknown action %q", click.Action)
	}

	o.key("clickEvent")
	event := e.begin()
	event.str("action", string(click.Action))
	if page, err := strconv.Atoi(click.Value); click.Action == ChangePage && err == nil &&
		strconv.Itoa(page) == click.Value {
		event.key("value")
		_, _ = e.buf.WriteString(click.Value)
	} else {
		event.str("value", click.Value)
	}
	event.end()
	return nil
}

func (e *encoder) hover(o *object, hover *HoverEvent) error {
	o.key("hoverEvent")
	event := e.begin()
	event.str("action", string(hover.Action))

	switch hover.Action {
	case ShowText:
		if hover.Text == nil {
			return errors.New("hoverEvent: show_text without text")
		}
		name := "contents"
		if e.codec.legacy {
			name = "value"
		}
		if err := event.component(name, hover.Text); err != nil {
			return fmt.Errorf("hoverEvent: %w", err)
		}
	case ShowItem:
		switch {
		case hover.Item != nil && e.codec.legacy:
			event.str("value", legacyItem(hover.Item))
		case hover.Item != nil:
			event.key("contents")
			item := e.begin()
			item.str("id", hover.Item.ID)
			if hover.Item.Count != 0 {
				item.key("count")
				_, _ = e.buf.WriteString(strconv.Itoa(hover.Item.Count))
			}
			if hover.Item.Tag != "" {
				item.str("tag", hover.Item.Tag)
			}
			item.end()
		case hover.Legacy != "":
			event.str("value", hover.Legacy)
		default:
			return errors.New("hoverEvent: show_item without item")
		}
	case ShowEntity:
		switch {
		case hover.Entity != nil && e.codec.legacy:
			value, err := e.legacyEntity(hover.Entity)
			if err != nil {
				return err
			}
			event.str("value", value)
		case hover.Entity != nil:
			event.key("contents")
			entity := e.begin()
			entity.str("type", hover.Entity.Type)
			entity.str("id", hover.Entity.ID.String())
			if hover.Entity.Name != nil {
				if err := entity.component("name", hover.Entity.Name); err != nil {
					return fmt.Errorf("hoverEvent: %w", err)
				}
			}
			entity.end()
		case hover.Legacy != "":
			event.str("value", hover.Legacy)
		default:
			return errors.New("hoverEvent: show_entity without entity")
		}
	default:
		return fmt.Errorf("hoverEvent: unknown action %q", hover.Action)
	}

	event.end()
	return nil
}

// legacyItem renders an item in the stringified NBT form used before 1.16.
func legacyItem(item *HoverItem) string {
	count := item.Count
	if count == 0 {
		count = 1
	}
	s := "{id:" + strconv.Quote(item.ID) + ",Count:" + strconv.Itoa(count) + "b"
	if item.Tag != "" {
		s += ",tag:" + item.Tag
	}
	return s + "}"
}

func (e *encoder) legacyEntity(entity *HoverEntity) (string, error) {
	s := "{type:" + strconv.Quote(entity.Type) + ",id:" + strconv.Quote(entity.ID.String())
	if entity.Name != nil {
		name, err := e.codec.Marshal(entity.Name)
		if err != nil {
			return "", fmt.Errorf("hoverEvent: name: %w", err)
		}
		s += ",name:" + strconv.Quote(string(name))
	}
	return s + "}", nil
}

const hexDigits = "0123456789abcdef"

// str writes s as a JSON string. HTML characters are left unescaped, unlike
// encoding/json, so commands and URLs stay readable on the wire.
func (e *encoder) str(s string) {
	buf := e.buf
	_ = buf.WriteByte('"')
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			switch {
			case b == '"' || b == '\\':
				_ = buf.WriteByte('\\')
				_ = buf.WriteByte(b)
			case b == '\n':
				_, _ = buf.WriteString(`\n`)
			case b == '\r':
				_, _ = buf.WriteString(`\r`)
			case b == '\t':
				_, _ = buf.WriteString(`\t`)
			case b < 0x20:
				_, _ = buf.WriteString(`\u00`)
				_ = buf.WriteByte(hexDigits[b>>4])
				_ = buf.WriteByte(hexDigits[b&0xf])
			default:
				_ = buf.WriteByte(b)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			_, _ = buf.WriteString(`\ufffd`)
		case r == '\u2028':
			_, _ = buf.WriteString(`\u2028`)
		case r == '\u2029':
			_, _ = buf.WriteString(`\u2029`)
		default:
			_, _ = buf.WriteString(s[i : i+size])
		}
		i += size
	}
	_ = buf.WriteByte('"')
}
