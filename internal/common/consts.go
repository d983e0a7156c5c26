package common

// UnknownStr is the fallback name for enum values outside the defined range.
const UnknownStr = "unknown"
