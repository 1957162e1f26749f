package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyDoc        = "document"
	KeyRefDoc     = "referring_document"
	KeyTarget     = "target"
	KeyDomain     = "domain"
	KeyRole       = "role"
	KeyKind       = "kind"
	KeyAnchor     = "anchor"
	KeyLabel      = "label"
	KeyPassID     = "pass_id"
	KeyDocsDir    = "docs_dir"
	KeyCandidates = "candidates"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Document(d string) slog.Attr     { return slog.String(KeyDoc, d) }
func ReferringDoc(d string) slog.Attr { return slog.String(KeyRefDoc, d) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Domain(d string) slog.Attr       { return slog.String(KeyDomain, d) }
func Role(r string) slog.Attr         { return slog.String(KeyRole, r) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Anchor(a string) slog.Attr       { return slog.String(KeyAnchor, a) }
func Label(l string) slog.Attr        { return slog.String(KeyLabel, l) }
func PassID(id string) slog.Attr      { return slog.String(KeyPassID, id) }
func DocsDir(d string) slog.Attr      { return slog.String(KeyDocsDir, d) }
func Candidates(n int) slog.Attr      { return slog.Int(KeyCandidates, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
