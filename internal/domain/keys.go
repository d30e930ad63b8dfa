package domain

// Kind selects one of the two catalogs.
type Kind string

const (
	KindError Kind = "errors"
	KindAlert Kind = "alerts"
)

// Kinds lists every catalog, errors first.
var Kinds = []Kind{KindError, KindAlert}

// Key identifies a message within a catalog.
type Key string

// Error catalog keys.
const (
	KeyGenericError                        Key = "genericError"
	KeyCouldNotParseScene                  Key = "couldNotParseScene"
	KeyCouldNotLoadScene                   Key = "couldNotLoadScene"
	KeyCouldNotParsePrefab                 Key = "couldNotParsePrefab"
	KeyCouldNotLoadPrefab                  Key = "couldNotLoadPrefab"
	KeyCouldNotOpenProject                 Key = "couldNotOpenProject"
	KeyCouldNotPerformActionWithoutProject Key = "couldNotPerformActionWithoutProject"
	KeyCouldNotImportAsset                 Key = "couldNotImportAsset"
)

// Alert catalog keys.
const (
	KeyConfirmImportAsset Key = "confirmImportAsset"
)

var (
	errorKeys = []Key{
		KeyGenericError,
		KeyCouldNotParseScene,
		KeyCouldNotLoadScene,
		KeyCouldNotParsePrefab,
		KeyCouldNotLoadPrefab,
		KeyCouldNotOpenProject,
		KeyCouldNotPerformActionWithoutProject,
		KeyCouldNotImportAsset,
	}
	alertKeys = []Key{
		KeyConfirmImportAsset,
	}
)

// Keys returns the ordered key set of a catalog, or nil for an unknown kind.
// The returned slice is a copy.
func Keys(kind Kind) []Key {
	switch kind {
	case KindError:
		return append([]Key(nil), errorKeys...)
	case KindAlert:
		return append([]Key(nil), alertKeys...)
	default:
		return nil
	}
}

// Has reports whether key belongs to the catalog of the given kind.
func Has(kind Kind, key Key) bool {
	for _, k := range Keys(kind) {
		if k == key {
			return true
		}
	}
	return false
}

// ChoiceID names a response control offered by a dialog.
type ChoiceID string

const (
	ChoiceOK  ChoiceID = "ok"
	ChoiceYes ChoiceID = "yes"
	ChoiceNo  ChoiceID = "no"
)

// ChoiceIDs returns the response controls of a catalog: a single
// acknowledgement for errors, a yes/no decision for alerts.
func ChoiceIDs(kind Kind) []ChoiceID {
	if kind == KindAlert {
		return []ChoiceID{ChoiceYes, ChoiceNo}
	}
	return []ChoiceID{ChoiceOK}
}
