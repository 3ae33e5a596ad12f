package common

// HasteVersion is the current Haste version as a string.
const HasteVersion string = "0.1.0"

// HasteProjectFileName is the name for Haste project files.
const HasteProjectFileName string = "haste.toml"

// HasteFileExt is the file extension for a Haste source file.
const HasteFileExt string = ".haste"
