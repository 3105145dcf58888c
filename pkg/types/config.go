package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config groups the settings of all three tools. It is decoded from the
// optional doctools.yaml file and DOCTOOLS_* environment variables.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
	Convert ConvertConfig `json:"convert" yaml:"convert" mapstructure:"convert"`
	Merge   MergeConfig   `json:"merge" yaml:"merge" mapstructure:"merge"`
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Convert.Validate(); err != nil {
		return err
	}
	return c.Merge.Validate()
}

// StoreConfig holds settings for the dirnav bookmark store.
type StoreConfig struct {
	// Path is the backing JSON file. Empty means <home>/.dircli_store.json;
	// DIRCLI_STORE overrides it.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Validate is a no-op today: an empty Path is resolved against the home
// directory at startup.
func (c *StoreConfig) Validate() error {
	return nil
}

// ConvertConfig holds settings for md2pdf.
type ConvertConfig struct {
	// Compiler is the typesetting binary invoked as "<compiler> compile <in> <out>".
	Compiler string `json:"compiler" yaml:"compiler" mapstructure:"compiler"`

	// OutputDir places every PDF in one directory instead of next to its
	// source. The -o flag overrides it.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`
}

// Validate checks the compiler is set.
func (c *ConvertConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Compiler, validation.Required),
	)
}

// MergeBackend names a PDF merge tool.
type MergeBackend string

const (
	BackendQpdf        MergeBackend = "qpdf"
	BackendGhostscript MergeBackend = "ghostscript"
)

// MergeConfig holds settings for mergepdf.
type MergeConfig struct {
	// Qpdf is the qpdf binary (primary backend).
	Qpdf string `json:"qpdf" yaml:"qpdf" mapstructure:"qpdf"`

	// Ghostscript is the gs binary (alternate backend).
	Ghostscript string `json:"ghostscript" yaml:"ghostscript" mapstructure:"ghostscript"`

	// Installer is the command run to install qpdf when it is missing,
	// e.g. [sudo dnf install -y qpdf]. Empty disables auto-install.
	Installer []string `json:"installer,omitempty" yaml:"installer,omitempty" mapstructure:"installer"`
}

// Validate checks both backend binaries are named.
func (c *MergeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Qpdf, validation.Required),
		validation.Field(&c.Ghostscript, validation.Required),
	)
}
