package branchname

import (
	"strings"
)

const (
	// DefaultSeparator is used when no separator has been configured.
	DefaultSeparator = "/"

	partMarker  = "part-"
	startMarker = "starts"

	// TransactionMarker is prepended to full and start names while a rebase is open.
	TransactionMarker = "_tmp_-"
)

// Config is the naming configuration the codec is parameterized by.
type Config struct {
	Prefix    string
	Separator string
}

// Codec maps identities to branch names under one naming configuration.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec for cfg. An empty separator falls back to DefaultSeparator.
func NewCodec(cfg Config) Codec {
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	return Codec{cfg: cfg}
}

// Config returns the naming configuration of the codec.
func (c Codec) Config() Config {
	return c.cfg
}

// Encode returns the full branch name of id.
func (c Codec) Encode(id Identity) string {
	return c.encode(id, false)
}

// EncodeStart returns the start marker branch name of id.
func (c Codec) EncodeStart(id Identity) string {
	return c.encode(id, true)
}

func (c Codec) encode(id Identity, start bool) string {
	parts := make([]string, 0, 4)
	if id.HasPrefix {
		parts = append(parts, id.Prefix)
	}
	if start {
		parts = append(parts, startMarker)
	}
	parts = append(parts, id.Base)
	if id.Position.IsSet() {
		parts = append(parts, partMarker+id.Position.String())
	}
	return strings.Join(parts, c.cfg.Separator)
}

// Decode parses a full branch name. It never fails: input without a parsable
// position marker yields an unpositioned identity whose base is everything
// after the prefix.
func (c Codec) Decode(raw string) Identity {
	id, rest := c.stripPrefix(raw)
	return c.decodeRest(id, rest)
}

// DecodeAny parses either a full or a start branch name and reports which
// form it was. A name like "starts/part-1.0" has no base after the marker,
// so it is read as the full branch of a stack whose base is "starts".
// Bases that begin with "starts" plus the separator remain ambiguous and
// decode as start names.
func (c Codec) DecodeAny(raw string) (Identity, bool) {
	id, rest := c.stripPrefix(raw)
	lead := startMarker + c.cfg.Separator
	if after, ok := strings.CutPrefix(rest, lead); ok && after != "" && !strings.HasPrefix(after, partMarker) {
		return c.decodeRest(id, after), true
	}
	return c.decodeRest(id, rest), false
}

// IsStart reports whether raw is a start marker name.
func (c Codec) IsStart(raw string) bool {
	_, start := c.DecodeAny(raw)
	return start
}

// IsManaged reports whether raw decodes inside the configured namespace.
func (c Codec) IsManaged(raw string) bool {
	_, ok := c.managedRest(raw)
	return ok
}

func (c Codec) stripPrefix(raw string) (Identity, string) {
	if rest, ok := c.managedRest(raw); ok {
		return Identity{Prefix: c.cfg.Prefix, HasPrefix: true}, rest
	}
	return Identity{}, raw
}

func (c Codec) managedRest(raw string) (string, bool) {
	if c.cfg.Prefix == "" {
		return raw, false
	}
	return strings.CutPrefix(raw, c.cfg.Prefix+c.cfg.Separator)
}

func (c Codec) decodeRest(id Identity, rest string) Identity {
	marker := c.cfg.Separator + partMarker
	if i := strings.LastIndex(rest, marker); i >= 0 {
		if pos, ok := ParsePosition(rest[i+len(marker):]); ok {
			id.Base = rest[:i]
			id.Position = pos
			return id
		}
	}
	id.Base = rest
	return id
}

// TmpName applies the transaction marker to a branch name.
func TmpName(name string) string {
	return TransactionMarker + name
}

// FromTmp strips the transaction marker. It returns false when name does not carry it.
func FromTmp(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, TransactionMarker)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

// IsTmp reports whether name carries the transaction marker.
func IsTmp(name string) bool {
	return strings.HasPrefix(name, TransactionMarker)
}
