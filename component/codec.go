package component

import (
	"github.com/Masterminds/semver/v3"
)

// hexColorVersion is the first release that accepts RGB colors, the font key
// and the "contents" form of hover events.
var hexColorVersion = semver.MustParse("1.16.0")

// Codec converts component trees to and from JSON for one target game version.
// A Codec is immutable and may be shared between goroutines.
type Codec struct {
	version *semver.Version
	legacy  bool
}

var latestCodec = &Codec{}

// NewCodec returns a codec targeting the given game version. A nil version
// targets the latest format.
func NewCodec(version *semver.Version) *Codec {
	if version == nil {
		return latestCodec
	}
	return &Codec{
		version: version,
		legacy:  version.LessThan(hexColorVersion),
	}
}

func LatestCodec() *Codec {
	return latestCodec
}

// Version returns the target version, or nil for the latest format.
func (c *Codec) Version() *semver.Version {
	return c.version
}

// Legacy reports whether the codec writes the pre-1.16 format.
func (c *Codec) Legacy() bool {
	return c.legacy
}

// Marshal encodes c with the latest codec.
func Marshal(c Component) ([]byte, error) {
	return latestCodec.Marshal(c)
}

// Unmarshal decodes any accepted representation of a component: a bare
// string, an array of components or a component object.
func Unmarshal(data []byte) (Component, error) {
	return latestCodec.Unmarshal(data)
}
