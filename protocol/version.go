package protocol

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a game release whose protocol differs from its predecessor in a
// way that matters for chat components.
type Version int

const (
	V1_7_10 Version = iota
	V1_8
	V1_9
	V1_12_2
	V1_13
	V1_14
	V1_15
	V1_16
	V1_16_5
	V1_17_1
	V1_18
	V1_19
	V1_19_2
	V1_19_3
	V1_19_4
	V1_20
	V1_20_2
	V1_20_3
	V1_20_5
	V1_21
	V1_21_1
	V1_21_3
	V1_21_4
	V1_21_5
	V1_21_8

	First  = V1_7_10
	Latest = V1_21_8
)

var versions = [...]struct {
	name     string
	protocol int32
}{
	V1_7_10: {"1.7.10", 5},
	V1_8:    {"1.8", 47},
	V1_9:    {"1.9", 107},
	V1_12_2: {"1.12.2", 340},
	V1_13:   {"1.13", 393},
	V1_14:   {"1.14", 477},
	V1_15:   {"1.15", 573},
	V1_16:   {"1.16", 735},
	V1_16_5: {"1.16.5", 754},
	V1_17_1: {"1.17.1", 756},
	V1_18:   {"1.18", 757},
	V1_19:   {"1.19", 759},
	V1_19_2: {"1.19.2", 760},
	V1_19_3: {"1.19.3", 761},
	V1_19_4: {"1.19.4", 762},
	V1_20:   {"1.20", 763},
	V1_20_2: {"1.20.2", 764},
	V1_20_3: {"1.20.3", 765},
	V1_20_5: {"1.20.5", 766},
	V1_21:   {"1.21", 767},
	V1_21_1: {"1.21.1", 767},
	V1_21_3: {"1.21.3", 768},
	V1_21_4: {"1.21.4", 769},
	V1_21_5: {"1.21.5", 770},
	V1_21_8: {"1.21.8", 772},
}

var stringToVersion = func() map[string]Version {
	m := make(map[string]Version, len(versions))
	for v, info := range versions {
		m[info.name] = Version(v)
	}
	return m
}()

func (v Version) valid() bool {
	return v >= First && v <= Latest
}

func (v Version) String() string {
	if !v.valid() {
		return "unknown"
	}
	return versions[v].name
}

// Protocol returns the protocol number sent in the handshake.
func (v Version) Protocol() int32 {
	if !v.valid() {
		return -1
	}
	return versions[v].protocol
}

func (v Version) Semver() *semver.Version {
	if !v.valid() {
		return nil
	}
	return semver.MustParse(versions[v].name)
}

// VersionFromString resolves a release string. A release missing from the
// table resolves to the newest known release of the same minor line that is
// not newer than it: "1.20.4" maps to 1.20.3 and "1.17" to 1.17.1.
func VersionFromString(s string) (Version, bool) {
	if version, ok := stringToVersion[s]; ok {
		return version, true
	}

	want, hasPatch, ok := parseReleaseVersion(s)
	if !ok {
		return 0, false
	}

	for v := Latest; v >= First; v-- {
		known := v.Semver()
		if known.Major() != want.Major() || known.Minor() != want.Minor() {
			continue
		}
		if hasPatch && known.Patch() > want.Patch() {
			continue
		}
		return v, true
	}
	return 0, false
}

// parseReleaseVersion accepts "major.minor" and "major.minor.patch" release
// strings only; snapshots, pre-releases and build metadata are rejected.
func parseReleaseVersion(s string) (*semver.Version, bool, bool) {
	dots := strings.Count(s, ".")
	if dots != 1 && dots != 2 || strings.HasPrefix(s, "v") {
		return nil, false, false
	}

	parsed, err := semver.NewVersion(s)
	if err != nil || parsed.Prerelease() != "" || parsed.Metadata() != "" {
		return nil, false, false
	}
	return parsed, dots == 2, true
}
