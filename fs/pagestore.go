package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/ciagent"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements ciagent.PageStore at compile time.
var _ ciagent.PageStore = (*FileStore)(nil)

// FileStore implements ciagent.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	// Now is used for the crawled date in frontmatter.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a page below the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *ciagent.Page) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	root := s.tempDir()
	fullPath := filepath.Join(root, relPath)
	if !strings.HasPrefix(fullPath, root+string(filepath.Separator)) {
		return ciagent.Errorf(ciagent.EINVALID, "path traversal in %s", page.URL)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// frontmatter is the YAML header of an exported page.
type frontmatter struct {
	Source  string `yaml:"source"`
	Crawled string `yaml:"crawled"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *ciagent.Page, crawled time.Time) ([]byte, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:  page.URL,
		Crawled: crawled.Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Text)
	return b.Bytes(), nil
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// A crawl with no saved pages still produces an empty directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
