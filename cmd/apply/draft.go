package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cpicareers/client/wizard"

	"github.com/spf13/viper"
)

// loadDraft reads a draft document (YAML, JSON or TOML, keyed by field name)
// into store. File fields hold paths; certificationsFiles is a list.
func loadDraft(path string, store *wizard.Store) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	base := filepath.Dir(path)

	var errs []error
	for step := wizard.StepIdentity; step <= wizard.LastDataStep; step++ {
		for _, key := range wizard.Fields(step) {
			var err error
			switch key {
			case wizard.CVFile, wizard.ProfilePicture:
				err = setFiles(store, key, base, optional(v.GetString(string(key))))
			case wizard.CertificationsFiles:
				err = setFiles(store, key, base, v.GetStringSlice(string(key)))
			default:
				err = store.SetField(key, v.GetString(string(key)))
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func optional(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func setFiles(store *wizard.Store, key wizard.FieldKey, base string, paths []string) error {
	files := make([]wizard.Attachment, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		files = append(files, wizard.Attachment{Name: filepath.Base(p), Data: data})
	}
	return store.SetFile(key, files...)
}
