package item

// ==================== Schema ====================

// FragmentSchemaID is the id the generated fragment schema is registered under
const FragmentSchemaID = "item-fragment.schema.json"

// ==================== Defaults ====================

// DefaultPrefabDir is where item bundles live when no prefab path is given
const DefaultPrefabDir = "customItems"

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadItemsDirFailed  = "failed to read items directory %s: %w"
	ErrMsgReadFragmentFailed  = "failed to read item fragment %s: %w"
	ErrMsgParseFragmentFailed = "failed to parse item fragment %s: %w"
	ErrMsgDecodeItemFailed    = "failed to decode item '%s' in %s: %w"
	ErrMsgSchemaCheckFailed   = "schema validation failed for %s: %w"
	ErrMsgBuildSchemaFailed   = "failed to build fragment schema: %w"
)

// Wire format error messages
const (
	ErrMsgStringListType     = "expected a string or an array of strings"
	ErrMsgContainerRefType   = "expected a container name or an array of container entries"
	ErrMsgMasterySectionType = "expected a mastery section or an array of sections"
)

// ==================== Log Messages ====================

const (
	LogMsgFragmentLoaded  = "Loaded item fragment"
	LogMsgFragmentSkipped = "Skipping excluded item fragment"
	LogMsgItemOverridden  = "Item redefined by later fragment"
)
