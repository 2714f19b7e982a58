package config

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for merkletool configuration
const (
	EnvMerkleVerbose       = "MERKLE_VERBOSE"
	EnvMerkleMaxItems      = "MERKLE_MAX_ITEMS"
	EnvMerkleIncludeHidden = "MERKLE_INCLUDE_HIDDEN"
)

const (
	// DefaultMaxItems caps how many files a single tree is built from.
	DefaultMaxItems = 1 << 20

	// DefaultDigestDisplayLength is how many hex characters of a digest are shown in abbreviated output.
	DefaultDigestDisplayLength = 10
)

// MerkleToolConfig represents the global configuration of the merkletool CLI
type MerkleToolConfig struct {
	// Operational settings
	Verbose bool `json:"verbose"`

	// Item loading
	MaxItems      int  `json:"max_items"`      // 0 means unlimited
	IncludeHidden bool `json:"include_hidden"` // include dot-files when reading a directory
}

// NewDefaultMerkleToolConfig returns the configuration used when no flags are set
func NewDefaultMerkleToolConfig() *MerkleToolConfig {
	return &MerkleToolConfig{
		MaxItems: DefaultMaxItems,
	}
}

// Validate validates the merkletool configuration
func (c *MerkleToolConfig) Validate() error {
	var allErrors field.ErrorList
	if c.MaxItems < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxItems"), c.MaxItems, "must be zero (unlimited) or positive"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// DirSource names a directory whose regular files become the items of a tree
type DirSource struct {
	Dir string `json:"dir" yaml:"dir"`
}

func (ds *DirSource) Validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	if ds.Dir == "" {
		allErrors = append(allErrors, field.Required(path.Child("dir"), "dir is required"))
	}
	return allErrors
}

// DiffRequest describes a comparison of two directories
type DiffRequest struct {
	Left  DirSource `json:"left" yaml:"left"`
	Right DirSource `json:"right" yaml:"right"`
}

func (dr *DiffRequest) Validate() error {
	var allErrors field.ErrorList
	allErrors = append(allErrors, dr.Left.Validate(field.NewPath("left"))...)
	allErrors = append(allErrors, dr.Right.Validate(field.NewPath("right"))...)
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// UpdateRequest describes a point update of one item in a directory tree
type UpdateRequest struct {
	Source  DirSource `json:"source" yaml:"source"`
	Index   int       `json:"index" yaml:"index"`
	Content string    `json:"content" yaml:"content"`
}

func (ur *UpdateRequest) Validate() error {
	var allErrors field.ErrorList
	allErrors = append(allErrors, ur.Source.Validate(field.NewPath("source"))...)
	if ur.Index < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("index"), ur.Index, "must be non-negative"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ValidateIndex checks an update index against the number of loaded items
func (ur *UpdateRequest) ValidateIndex(itemCount int) error {
	if ur.Index >= itemCount {
		return fmt.Errorf("index %d out of range: directory has %d items", ur.Index, itemCount)
	}
	return nil
}
