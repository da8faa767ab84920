package common

const (
	SrcFileExtension = ".cap"
	ProjectFileName  = "capuchin.toml"
	CapuchinVersion  = "0.1.0"
	DefaultPrompt    = ">> "
)
