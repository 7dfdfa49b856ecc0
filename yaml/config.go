// Package yaml loads extraction settings from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/stash"
	yamlv3 "gopkg.in/yaml.v3"
)

// LoadExtractConfig reads the YAML file at path over the default
// extraction settings. Keys missing from the file keep their defaults;
// lists present in the file replace the defaults entirely.
func LoadExtractConfig(path string) (stash.ExtractConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return stash.ExtractConfig{}, err
	}
	return ParseExtractConfig(data)
}

// ParseExtractConfig decodes YAML data over the default extraction
// settings and validates the result.
func ParseExtractConfig(data []byte) (stash.ExtractConfig, error) {
	cfg := stash.DefaultExtractConfig()

	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return stash.ExtractConfig{}, stash.Errorf(stash.EINVALID, "invalid config: %v", err)
	}

	if err := validate(cfg); err != nil {
		return stash.ExtractConfig{}, err
	}
	return cfg, nil
}

func validate(cfg stash.ExtractConfig) error {
	if len(cfg.ArticleSelectors) == 0 {
		return stash.Errorf(stash.EINVALID, "article_selectors must not be empty")
	}
	if cfg.ArticleBlockSelector == "" {
		return stash.Errorf(stash.EINVALID, "article_block_selector required")
	}
	if cfg.ClientSelector == "" {
		return stash.Errorf(stash.EINVALID, "client_selector required")
	}
	thresholds := map[string]int{
		"readability_min_text":   cfg.ReadabilityMinText,
		"selector_min_text":      cfg.SelectorMinText,
		"selector_min_fragment":  cfg.SelectorMinFragment,
		"paragraph_min_fragment": cfg.ParagraphMinFragment,
		"client_min_fragment":    cfg.ClientMinFragment,
		"client_min_fragments":   cfg.ClientMinFragments,
	}
	for name, v := range thresholds {
		if v < 0 {
			return stash.Errorf(stash.EINVALID, "%s must not be negative", name)
		}
	}
	if cfg.BodyMaxChars <= 0 || cfg.ExcerptLength <= 0 || cfg.MaxContentLength <= 0 {
		return stash.Errorf(stash.EINVALID, "body_max_chars, excerpt_length and max_content_length must be positive")
	}
	return nil
}
