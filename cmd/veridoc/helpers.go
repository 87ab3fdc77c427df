package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/veridoc-io/veridoc/internal/config"
	"github.com/veridoc-io/veridoc/internal/ensemble"
	"github.com/veridoc-io/veridoc/internal/specialist"
)

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// buildEngine loads the project profile from dir and wires the specialist
// set, shadowing builtins with remote evaluators where configured.
func buildEngine(dir, tierFlag string, log *logrus.Logger) (*ensemble.Engine, ensemble.Config, string, error) {
	profile, err := config.Load(dir)
	if err != nil {
		return nil, ensemble.Config{}, "", err
	}

	cfg, err := profile.EngineConfig()
	if err != nil {
		return nil, ensemble.Config{}, "", err
	}

	tier := tierFlag
	if tier == "" {
		tier = profile.Tier
	}

	reg := specialist.NewRegistry()
	evaluators, err := profile.RemoteEvaluators()
	if err != nil {
		return nil, ensemble.Config{}, "", err
	}
	for kind, url := range evaluators {
		kind, url := kind, url
		reg.Register(kind, func() ensemble.Specialist {
			return specialist.NewRemoteSpecialist(kind, url, nil)
		})
	}

	return ensemble.NewEngine(cfg, reg.BuildAll(), nil, log), cfg, tier, nil
}

var pageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// naturalLess orders strings with embedded digit runs numerically, so
// page-2.png sorts before page-10.png regardless of zero padding.
func naturalLess(a, b string) bool {
	tie := 0 // padding difference in otherwise equal digit runs
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			an, arest := splitDigits(a)
			bn, brest := splitDigits(b)
			if !numericEqual(an, bn) {
				return numericLess(an, bn)
			}
			if tie == 0 && an != bn {
				if an < bn {
					tie = -1
				} else {
					tie = 1
				}
			}
			a, b = arest, brest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return tie < 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// numericLess compares two digit runs by value without parsing, so runs
// longer than an int64 still order correctly.
func numericLess(a, b string) bool {
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func numericEqual(a, b string) bool {
	return strings.TrimLeft(a, "0") == strings.TrimLeft(b, "0")
}

// loadDocument reads rendered page images from a directory, in filename
// order (digit runs compared numerically), and attaches metadata from
// key=value pairs.
func loadDocument(dir string, meta []string) (ensemble.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ensemble.Document{}, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if pageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ensemble.Document{}, fmt.Errorf("no page images found in %s", dir)
	}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	doc := ensemble.Document{Metadata: map[string]string{}}
	for i, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return ensemble.Document{}, fmt.Errorf("read page %s: %w", path, err)
		}
		doc.Pages = append(doc.Pages, ensemble.PageImage{Number: i + 1, Path: path, Data: data})
	}

	for _, kv := range meta {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return ensemble.Document{}, fmt.Errorf("metadata %q is not key=value", kv)
		}
		doc.Metadata[key] = value
	}

	return doc, nil
}
