package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bank is a named collection of questions for one study topic. Each bank
// is its own ledger namespace.
type Bank struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// LoadFile reads and validates a single bank file. The file is checked
// against the bank schema first; individual questions that fail the
// per-question contract (answer letter must address a real option) are
// filtered with a warning rather than failing the whole bank.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse validates and decodes bank JSON. name is used in error messages.
func Parse(data []byte, name string) (*Bank, error) {
	if err := validateBank(data); err != nil {
		return nil, fmt.Errorf("bank %s: %w", name, err)
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank %s: %w", name, err)
	}

	kept := b.Questions[:0]
	for _, q := range b.Questions {
		if q.CorrectIndex() < 0 {
			fmt.Fprintf(os.Stderr, "warning: bank %s: question %q has unmappable answer %q, skipping\n",
				b.ID, q.ID, q.Answer)
			continue
		}
		kept = append(kept, q)
	}
	b.Questions = kept

	if len(b.Questions) == 0 {
		return nil, fmt.Errorf("bank %s: no usable questions", name)
	}
	return &b, nil
}

// WriteFile saves the bank as indented JSON, the same format LoadFile
// reads back.
func (b *Bank) WriteFile(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank %s: %w", b.ID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

// LoadDir loads every *.json bank file in dir, sorted by bank ID.
// Files that fail to parse are skipped with a warning so one bad bank
// does not take down the rest.
func LoadDir(dir string) ([]*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read banks dir: %w", err)
	}

	var banks []*Bank
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		banks = append(banks, b)
	}

	sort.Slice(banks, func(i, j int) bool { return banks[i].ID < banks[j].ID })
	return banks, nil
}

// DefaultBanksDir resolves the banks directory in priority order:
// 1. DRILL_BANKS environment variable
// 2. $XDG_DATA_HOME/drill/banks
// 3. ~/.local/share/drill/banks
func DefaultBanksDir() (string, error) {
	if p := os.Getenv("DRILL_BANKS"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "drill", "banks"), nil
}

// Discover loads all banks from the default directory, falling back to
// the embedded starter bank when the directory is missing or empty.
func Discover() ([]*Bank, error) {
	dir, err := DefaultBanksDir()
	if err != nil {
		return nil, err
	}

	banks, err := LoadDir(dir)
	if err != nil || len(banks) == 0 {
		starter, serr := StarterBank()
		if serr != nil {
			return nil, serr
		}
		return []*Bank{starter}, nil
	}
	return banks, nil
}
