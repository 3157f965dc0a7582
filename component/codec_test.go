package component

import (
	"encoding/json"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func mustUnmarshal(t *testing.T, data string) Component {
	t.Helper()
	c, err := Unmarshal([]byte(data))
	require.NoError(t, err)
	return c
}

func requireDecodeError(t *testing.T, data, reason string) *DecodeError {
	t.Helper()
	_, err := Unmarshal([]byte(data))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, reason, decodeErr.Reason)
	return decodeErr
}

func TestMarshalNestedExample(t *testing.T) {
	hi := NewText("hi")
	hi.Bold = True
	hi.Color = Named(Red)

	bye := NewText("bye")
	bye.Color = Named(White)
	bye.Bold = False
	hi.Append(bye)

	data, err := Marshal(hi)
	require.NoError(t, err)
	require.Equal(t, `{"text":"hi","bold":true,"color":"red","extra":[{"text":"bye","bold":false,"color":"white"}]}`, string(data))

	decoded := mustUnmarshal(t, string(data))
	require.True(t, Equal(hi, decoded))
}

func TestExplicitFalseIsNotUnset(t *testing.T) {
	explicit := NewText("x")
	explicit.Italic = False
	unset := NewText("x")

	explicitJSON, err := Marshal(explicit)
	require.NoError(t, err)
	unsetJSON, err := Marshal(unset)
	require.NoError(t, err)

	require.Equal(t, `{"text":"x","italic":false}`, string(explicitJSON))
	require.Equal(t, `{"text":"x"}`, string(unsetJSON))
	require.False(t, Equal(explicit, unset))

	require.Equal(t, False, mustUnmarshal(t, string(explicitJSON)).Base().Italic)
	require.Equal(t, Unset, mustUnmarshal(t, string(unsetJSON)).Base().Italic)
}

func TestUnmarshalShorthand(t *testing.T) {
	for _, s := range []string{"", "hello", "multi\nline", `quote " and \ backslash`, "ünïcødé ✓"} {
		raw, err := json.Marshal(s)
		require.NoError(t, err)

		c := mustUnmarshal(t, string(raw))
		require.True(t, Equal(NewText(s), c), s)
	}
}

func TestUnmarshalArray(t *testing.T) {
	c := mustUnmarshal(t, `["a","b"]`)

	want := NewText("")
	want.Append(NewText("a"), NewText("b"))
	require.True(t, Equal(want, c))
}

func TestUnmarshalArrayEdgeCases(t *testing.T) {
	single := mustUnmarshal(t, `[{"text":"only","bold":true}]`)
	want := NewText("only")
	want.Bold = True
	require.True(t, Equal(want, single))

	empty := mustUnmarshal(t, `[]`)
	require.True(t, Equal(NewText(""), empty))

	nested := mustUnmarshal(t, `["a",["b","c"]]`)
	inner := NewText("")
	inner.Append(NewText("b"), NewText("c"))
	outer := NewText("")
	outer.Append(NewText("a"), inner)
	require.True(t, Equal(outer, nested))
}

func TestShorthandAndObjectDecodeEqual(t *testing.T) {
	forms := []string{`"hey"`, `{"text":"hey"}`, `["hey"]`, `{"text":"hey","extra":[]}`}
	for _, form := range forms {
		require.True(t, Equal(NewText("hey"), mustUnmarshal(t, form)), form)
	}
}

func TestUnmarshalMissingDiscriminant(t *testing.T) {
	requireDecodeError(t, `{}`, ReasonMissingDiscriminant)
	requireDecodeError(t, `{"bold":true,"color":"red","with":[]}`, ReasonMissingDiscriminant)
	err := requireDecodeError(t, `{"text":"a","extra":[{"italic":true}]}`, ReasonMissingDiscriminant)
	require.Equal(t, "extra[0]", err.Path)
}

func TestUnmarshalDiscriminantPriority(t *testing.T) {
	tests := []struct {
		data string
		kind Kind
	}{
		{`{"nbt":"Items","block":"0 0 0","keybind":"key.jump","selector":"@a","score":{"name":"a","objective":"b"},"translate":"k","text":"t"}`, KindText},
		{`{"nbt":"Items","block":"0 0 0","keybind":"key.jump","selector":"@a","score":{"name":"a","objective":"b"},"translate":"k"}`, KindTranslatable},
		{`{"nbt":"Items","block":"0 0 0","keybind":"key.jump","selector":"@a","score":{"name":"a","objective":"b"}}`, KindScore},
		{`{"nbt":"Items","block":"0 0 0","keybind":"key.jump","selector":"@a"}`, KindSelector},
		{`{"nbt":"Items","block":"0 0 0","keybind":"key.jump"}`, KindKeybind},
		{`{"nbt":"Items","block":"0 0 0"}`, KindNBT},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.kind, mustUnmarshal(t, tt.data).Kind())
		})
	}
}

func TestUnmarshalStrictBooleans(t *testing.T) {
	for _, data := range []string{
		`{"text":"a","bold":"true"}`,
		`{"text":"a","italic":1}`,
		`{"text":"a","underlined":null}`,
		`{"text":"a","strikethrough":{}}`,
		`{"text":"a","obfuscated":[]}`,
		`{"nbt":"a","entity":"@s","interpret":"yes"}`,
	} {
		requireDecodeError(t, data, ReasonInvalidType)
	}
}

func TestUnmarshalWrongFieldTypes(t *testing.T) {
	requireDecodeError(t, `{"text":5}`, ReasonInvalidType)
	requireDecodeError(t, `{"text":"a","extra":"b"}`, ReasonInvalidType)
	requireDecodeError(t, `{"translate":"a","with":{}}`, ReasonInvalidType)
	requireDecodeError(t, `{"text":"a","color":7}`, ReasonInvalidType)
	requireDecodeError(t, `{"text":"a","insertion":false}`, ReasonInvalidType)
	requireDecodeError(t, `42`, ReasonInvalidType)
	requireDecodeError(t, `null`, ReasonInvalidType)
	requireDecodeError(t, `{"text":`, ReasonInvalidJSON)
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	c := mustUnmarshal(t, `{"text":"a","shadow_color":-1,"future":{"nested":[1,2]},"type":"text"}`)
	require.True(t, Equal(NewText("a"), c))
}

func TestUnmarshalColorErrors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"text":"a","color":"orange"}`))
	require.ErrorIs(t, err, ErrUnknownColor)

	_, err = Unmarshal([]byte(`{"text":"a","color":"#12345"}`))
	require.ErrorIs(t, err, ErrInvalidHexFormat)

	c := mustUnmarshal(t, `{"text":"a","color":"GOLD"}`)
	require.Equal(t, Named(Gold), c.Base().Color)

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"a","color":"gold"}`, string(data))
}

func TestScore(t *testing.T) {
	s := NewScore("@p", "kills")
	data, err := Marshal(s)
	require.NoError(t, err)
	require.Equal(t, `{"score":{"name":"@p","objective":"kills"}}`, string(data))

	resolved := mustUnmarshal(t, `{"score":{"name":"Steve","objective":"kills","value":"12"}}`)
	require.Equal(t, "12", resolved.(*Score).Value)
	require.Equal(t, "12", Plain(resolved))

	requireDecodeError(t, `{"score":{"name":"@p"}}`, ReasonMalformed)
	requireDecodeError(t, `{"score":"kills"}`, ReasonInvalidType)
}

func TestTranslatable(t *testing.T) {
	name := NewText("Steve")
	name.Color = Named(Yellow)
	tr := NewTranslatable("multiplayer.player.joined", name)
	tr.SetFallback("%s joined")

	data, err := Marshal(tr)
	require.NoError(t, err)
	require.Equal(t, `{"translate":"multiplayer.player.joined","fallback":"%s joined","with":[{"text":"Steve","color":"yellow"}]}`, string(data))
	require.True(t, Equal(tr, mustUnmarshal(t, string(data))))

	bare, err := Marshal(NewTranslatable("chat.type.text"))
	require.NoError(t, err)
	require.Equal(t, `{"translate":"chat.type.text"}`, string(bare))
}

func TestTranslatableLiteralArguments(t *testing.T) {
	c := mustUnmarshal(t, `{"translate":"commands.xp","with":[12,"Steve",true,-1.5,{"text":"x"}]}`)

	want := NewTranslatable("commands.xp",
		NewText("12"), NewText("Steve"), NewText("true"), NewText("-1.5"), NewText("x"))
	require.True(t, Equal(want, c))

	requireDecodeError(t, `{"translate":"k","with":[null]}`, ReasonInvalidType)
}

func TestSelectorAndKeybind(t *testing.T) {
	sel := NewSelector("@e[type=cow]")
	sel.Separator = NewText(" | ")

	data, err := Marshal(sel)
	require.NoError(t, err)
	require.Equal(t, `{"selector":"@e[type=cow]","separator":{"text":" | "}}`, string(data))
	require.True(t, Equal(sel, mustUnmarshal(t, string(data))))

	shorthand := mustUnmarshal(t, `{"selector":"@a","separator":", "}`)
	require.True(t, Equal(NewText(", "), shorthand.(*Selector).Separator))

	key, err := Marshal(NewKeybind("key.inventory"))
	require.NoError(t, err)
	require.Equal(t, `{"keybind":"key.inventory"}`, string(key))
}

func TestNBT(t *testing.T) {
	tests := []struct {
		nbt  *NBT
		want string
	}{
		{NewBlockNBT("Items[0]", "~ ~-1 ~"), `{"nbt":"Items[0]","block":"~ ~-1 ~"}`},
		{NewEntityNBT("Health", "@s"), `{"nbt":"Health","entity":"@s"}`},
		{NewStorageNBT("data.msg", "mypack:store"), `{"nbt":"data.msg","storage":"mypack:store"}`},
	}

	for _, tt := range tests {
		data, err := Marshal(tt.nbt)
		require.NoError(t, err)
		require.Equal(t, tt.want, string(data))
		require.True(t, Equal(tt.nbt, mustUnmarshal(t, tt.want)))
	}

	interp := NewStorageNBT("data.msg", "mypack:store")
	interp.Interpret = True
	interp.Separator = NewText(",")
	data, err := Marshal(interp)
	require.NoError(t, err)
	require.Equal(t, `{"nbt":"data.msg","storage":"mypack:store","interpret":true,"separator":{"text":","}}`, string(data))
	require.True(t, Equal(interp, mustUnmarshal(t, string(data))))

	requireDecodeError(t, `{"nbt":"Health"}`, ReasonMalformed)

	_, err = Marshal(NewNBT("x", NBTSource{}))
	require.Error(t, err)
}

func TestStyleFields(t *testing.T) {
	c := NewText("click me")
	c.Underlined = True
	c.Strikethrough = False
	c.Obfuscated = True
	c.Color = RGB(0x12, 0xab, 0xef)
	c.SetFont(NewIdentifier("minecraft", "uniform"))
	c.SetInsertion("")
	c.ClickEvent = NewClickEvent(SuggestCommand, "/msg <player> & hi")

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"click me","underlined":true,"strikethrough":false,"obfuscated":true,"color":"#12abef","font":"minecraft:uniform","insertion":"","clickEvent":{"action":"suggest_command","value":"/msg <player> & hi"}}`, string(data))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))
}

func TestClickEventChangePage(t *testing.T) {
	c := NewText("next")
	c.ClickEvent = NewClickEvent(ChangePage, "3")

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"next","clickEvent":{"action":"change_page","value":3}}`, string(data))

	fromString := mustUnmarshal(t, `{"text":"next","clickEvent":{"action":"change_page","value":"3"}}`)
	require.True(t, Equal(c, fromString))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))

	requireDecodeError(t, `{"text":"a","clickEvent":{"action":"explode","value":"x"}}`, ReasonUnknownAction)
	requireDecodeError(t, `{"text":"a","clickEvent":{"value":"x"}}`, ReasonMalformed)
	requireDecodeError(t, `{"text":"a","clickEvent":"open_url"}`, ReasonInvalidType)
}

func TestHoverShowText(t *testing.T) {
	tip := NewText("tooltip")
	tip.Italic = True
	c := NewText("hover")
	c.HoverEvent = ShowTextEvent(tip)

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"hover","hoverEvent":{"action":"show_text","contents":{"text":"tooltip","italic":true}}}`, string(data))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))

	legacy := mustUnmarshal(t, `{"text":"hover","hoverEvent":{"action":"show_text","value":{"text":"tooltip","italic":true}}}`)
	require.True(t, Equal(c, legacy))

	requireDecodeError(t, `{"text":"a","hoverEvent":{"action":"show_text"}}`, ReasonMalformed)
	requireDecodeError(t, `{"text":"a","hoverEvent":{"action":"show_achievement","value":"x"}}`, ReasonUnknownAction)
}

func TestHoverShowItem(t *testing.T) {
	c := NewText("[Diamond]")
	c.HoverEvent = ShowItemEvent(HoverItem{ID: "minecraft:diamond", Count: 2, Tag: "{Damage:0}"})

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"[Diamond]","hoverEvent":{"action":"show_item","contents":{"id":"minecraft:diamond","count":2,"tag":"{Damage:0}"}}}`, string(data))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))

	byID := mustUnmarshal(t, `{"text":"x","hoverEvent":{"action":"show_item","contents":"minecraft:stone"}}`)
	require.Equal(t, &HoverItem{ID: "minecraft:stone"}, byID.Base().HoverEvent.Item)

	legacy := mustUnmarshal(t, `{"text":"x","hoverEvent":{"action":"show_item","value":"{id:\"minecraft:stone\",Count:1b}"}}`)
	require.Equal(t, `{id:"minecraft:stone",Count:1b}`, legacy.Base().HoverEvent.Legacy)

	again, err := Marshal(legacy)
	require.NoError(t, err)
	require.True(t, Equal(legacy, mustUnmarshal(t, string(again))))
}

func TestHoverShowEntity(t *testing.T) {
	id := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	c := NewSelector("@p")
	c.HoverEvent = ShowEntityEvent(HoverEntity{Type: "minecraft:player", ID: id, Name: NewText("Notch")})

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"selector":"@p","hoverEvent":{"action":"show_entity","contents":{"type":"minecraft:player","id":"069a79f4-44e9-4726-a5be-fca90e38aaf5","name":{"text":"Notch"}}}}`, string(data))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))

	intArray := mustUnmarshal(t, `{"selector":"@p","hoverEvent":{"action":"show_entity","contents":{"type":"minecraft:player","id":[110787060,1156138790,-1514210135,238594805],"name":"Notch"}}}`)
	require.True(t, Equal(c, intArray))

	requireDecodeError(t, `{"text":"a","hoverEvent":{"action":"show_entity","contents":{"type":"minecraft:pig","id":"nope"}}}`, ReasonInvalidValue)
	requireDecodeError(t, `{"text":"a","hoverEvent":{"action":"show_entity","contents":{"type":"minecraft:pig"}}}`, ReasonMalformed)
}

func TestHoverLegacyValueMustDescribeSomething(t *testing.T) {
	for _, action := range []string{"show_item", "show_entity"} {
		requireDecodeError(t, `{"text":"x","hoverEvent":{"action":"`+action+`","value":""}}`, ReasonMalformed)
		requireDecodeError(t, `{"text":"x","hoverEvent":{"action":"`+action+`","value":{"text":""}}}`, ReasonMalformed)
	}

	c := mustUnmarshal(t, `{"text":"x","hoverEvent":{"action":"show_entity","value":{"text":"{type:\"minecraft:pig\"}"}}}`)
	require.Equal(t, `{type:"minecraft:pig"}`, c.Base().HoverEvent.Legacy)
	data, err := Marshal(c)
	require.NoError(t, err)
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))
}

func TestMarshalErrors(t *testing.T) {
	_, err := Marshal(nil)
	require.ErrorIs(t, err, ErrNilComponent)

	c := NewText("a")
	c.Extra = []Component{nil}
	_, err = Marshal(c)
	require.ErrorIs(t, err, ErrNilComponent)

	c = NewText("a")
	c.HoverEvent = &HoverEvent{Action: ShowText}
	_, err = Marshal(c)
	require.Error(t, err)

	c = NewText("a")
	c.ClickEvent = &ClickEvent{Action: "launch"}
	_, err = Marshal(c)
	require.Error(t, err)
}

func TestMarshalEscaping(t *testing.T) {
	c := NewText("a\"b\\c\nd\te\x01f\u2028g<h>&")
	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"a\"b\\c\nd\te\u0001f\u2028g<h>&"}`, string(data))
	require.True(t, json.Valid(data))
	require.True(t, Equal(c, mustUnmarshal(t, string(data))))
}

func TestMarshalReplacesInvalidUTF8(t *testing.T) {
	data, err := Marshal(NewText("a\xffb"))
	require.NoError(t, err)
	require.Equal(t, `{"text":"a\ufffdb"}`, string(data))
	require.Equal(t, "a\ufffdb", mustUnmarshal(t, string(data)).(*Text).Content)
}

func TestLegacyCodec(t *testing.T) {
	codec := NewCodec(semver.MustParse("1.12.2"))
	require.True(t, codec.Legacy())
	require.False(t, NewCodec(semver.MustParse("1.16.0")).Legacy())
	require.Same(t, LatestCodec(), NewCodec(nil))

	c := NewText("old")
	c.Color = RGB(0xfe, 0xfe, 0xfd)
	c.SetFont(NewIdentifier("minecraft", "alt"))
	c.HoverEvent = ShowTextEvent(NewText("tip"))

	data, err := codec.Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"old","color":"white","hoverEvent":{"action":"show_text","value":{"text":"tip"}}}`, string(data))

	item := NewText("item")
	item.HoverEvent = ShowItemEvent(HoverItem{ID: "minecraft:stone"})
	data, err = codec.Marshal(item)
	require.NoError(t, err)
	require.Equal(t, `{"text":"item","hoverEvent":{"action":"show_item","value":"{id:\"minecraft:stone\",Count:1b}"}}`, string(data))

	decoded, err := codec.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, `{id:"minecraft:stone",Count:1b}`, decoded.Base().HoverEvent.Legacy)
}

func TestDecodeErrorMessage(t *testing.T) {
	_, err := Unmarshal([]byte(`{"text":"a","extra":[{"text":"b","color":"mauve"}]}`))
	require.EqualError(t, err, `decode component at extra[0].color: invalid value: unknown color: "mauve"`)
}
