// internal/key/key.go
package key

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Strategy selects how a correlation key is derived from a header or label.
type Strategy int

const (
	// ClusterNum extracts the digits of the first "cluster_num=<digits>" field.
	ClusterNum Strategy = iota
	// Prefix joins the first two underscore-delimited segments of a header.
	Prefix
	// LabelPrefix cuts a label at its first whitespace, then applies Prefix.
	LabelPrefix
)

// ClusterMarker is the field marker searched for by ClusterNum.
const ClusterMarker = "cluster_num="

// Key is a correlation key. OK is false when nothing could be extracted,
// which is distinct from any valid value (including "0").
type Key struct {
	Value string
	OK    bool
}

// None is the absent key.
var None = Key{}

func (k Key) String() string {
	if !k.OK {
		return "<none>"
	}
	return k.Value
}

// Extract derives a key from text using strategy s. It never fails: an
// unparseable input yields None.
func Extract(s Strategy, text string) Key {
	switch s {
	case ClusterNum:
		return clusterNum(text)
	case Prefix:
		return prefix(text)
	case LabelPrefix:
		return labelPrefix(text)
	default:
		return None
	}
}

// ClusterID returns the integer cluster id of a ClusterNum key.
func ClusterID(k Key) (int, bool) {
	if !k.OK {
		return 0, false
	}
	n, err := strconv.Atoi(k.Value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// FromClusterID builds the key ClusterNum would extract for id.
func FromClusterID(id int) Key {
	return Key{Value: strconv.Itoa(id), OK: true}
}

// ParseStrategy maps a config/CLI name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cluster", "cluster_num":
		return ClusterNum, nil
	case "prefix", "header":
		return Prefix, nil
	case "label":
		return LabelPrefix, nil
	}
	return 0, fmt.Errorf("unknown key strategy %q (want cluster | prefix | label)", name)
}

func (s Strategy) String() string {
	switch s {
	case ClusterNum:
		return "cluster"
	case Prefix:
		return "prefix"
	case LabelPrefix:
		return "label"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// clusterNum scans every occurrence of the marker; the first one followed by
// at least one digit wins.
func clusterNum(text string) Key {
	rest := text
	for {
		i := strings.Index(rest, ClusterMarker)
		if i < 0 {
			return None
		}
		rest = rest[i+len(ClusterMarker):]
		j := 0
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j == 0 {
			continue
		}
		n, err := strconv.Atoi(rest[:j])
		if err != nil {
			return None // overflow
		}
		return FromClusterID(n)
	}
}

func prefix(text string) Key {
	parts := strings.SplitN(text, "_", 3)
	if len(parts) < 2 {
		return None
	}
	return Key{Value: parts[0] + "_" + parts[1], OK: true}
}

func labelPrefix(text string) Key {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		text = text[:i]
	}
	return prefix(text)
}
