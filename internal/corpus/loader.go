package corpus

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// diseasePattern extracts the disease id from a workflow filename. The
// match is unanchored and the capture is non-greedy, so
// "wf_heart_disease_mayo.txt" yields "heart". Filenames where the
// capture is empty or the pattern never matches are malformed.
var diseasePattern = regexp.MustCompile(`wf_(.*?)_`)

// ParseFilename returns the disease id encoded in a workflow filename,
// or false when the name does not follow the wf_<disease>_ convention.
func ParseFilename(name string) (string, bool) {
	m := diseasePattern.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSources replaces the source set to scan.
func WithSources(sources []Source) LoaderOption {
	return func(l *Loader) { l.sources = sources }
}

// WithDiseaseFilter restricts loading to the given disease ids. An
// empty filter loads everything.
func WithDiseaseFilter(diseases []string) LoaderOption {
	return func(l *Loader) {
		if len(diseases) == 0 {
			l.diseases = nil
			return
		}
		l.diseases = make(map[string]struct{}, len(diseases))
		for _, d := range diseases {
			l.diseases[d] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger logging.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// Loader reads a corpus tree from disk.
type Loader struct {
	sources  []Source
	diseases map[string]struct{}
	logger   logging.Logger
}

// NewLoader returns a Loader over the default source set.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		sources: DefaultSources(),
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.NewNopLogger()
	}
	return l
}

// Load reads every workflow document under root. A missing root is the
// only fatal condition; missing source folders are skipped and per-file
// problems are recorded on the returned Corpus.
func (l *Loader) Load(root string) (*Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMissingInput, "corpus root not found").
			WithDetail(root)
	}
	if !info.IsDir() {
		return nil, apperrors.New(apperrors.ErrCodeMissingInput, "corpus root is not a directory").
			WithDetail(root)
	}

	c := newCorpus(l.sources)
	for _, src := range l.sources {
		l.loadSource(c, root, src)
	}

	l.logger.Info("corpus loaded",
		logging.String("root", root),
		logging.Int("documents", c.TotalDocuments()),
		logging.Int("diseases", len(c.Diseases())),
		logging.Int("skipped", len(c.loadErrors)),
	)
	return c, nil
}

func (l *Loader) loadSource(c *Corpus, root string, src Source) {
	dir := filepath.Join(root, src.Folder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("source folder missing, skipping",
				logging.String("source", src.ID),
				logging.String("dir", dir),
			)
			return
		}
		c.loadErrors = append(c.loadErrors, LoadError{
			Path: dir,
			Err:  apperrors.Wrap(err, apperrors.ErrCodeUnreadableFile, "read source folder"),
		})
		l.logger.Warn("source folder unreadable, skipping",
			logging.String("source", src.ID),
			logging.String("dir", dir),
			logging.Err(err),
		)
		return
	}

	// os.ReadDir sorts by filename, so duplicate handling is
	// deterministic across runs.
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		l.loadFile(c, filepath.Join(dir, entry.Name()), entry.Name(), src)
	}
}

func (l *Loader) loadFile(c *Corpus, path, name string, src Source) {
	disease, ok := ParseFilename(name)
	if !ok {
		c.loadErrors = append(c.loadErrors, LoadError{
			Path: path,
			Err:  apperrors.New(apperrors.ErrCodeMalformedFilename, "filename does not encode a disease").WithDetail(name),
		})
		l.logger.Warn("malformed workflow filename, skipping",
			logging.String("source", src.ID),
			logging.String("file", name),
		)
		return
	}
	if l.diseases != nil {
		if _, wanted := l.diseases[disease]; !wanted {
			l.logger.Debug("disease filtered out",
				logging.String("disease", disease),
				logging.String("file", name),
			)
			return
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.loadErrors = append(c.loadErrors, LoadError{
			Path: path,
			Err:  apperrors.Wrap(err, apperrors.ErrCodeUnreadableFile, "read workflow file"),
		})
		l.logger.Warn("unreadable workflow file, skipping",
			logging.String("source", src.ID),
			logging.String("file", name),
			logging.Err(err),
		)
		return
	}

	doc := &WorkflowText{
		Disease: disease,
		Source:  src.ID,
		Path:    path,
		Text:    string(data),
	}
	if replaced := c.add(doc); replaced {
		l.logger.Warn("duplicate workflow for disease, keeping later file",
			logging.String("disease", disease),
			logging.String("source", src.ID),
			logging.String("file", name),
		)
	}
}
