package layoutlint

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// FileIssue is one issue attributed to a scanned file, with the offending
// source line captured for reporter context output.
type FileIssue struct {
	File       string
	Issue      Issue
	SourceLine string
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// Result aggregates one analysis run across all scanned files.
type Result struct {
	Issues         []FileIssue
	Stats          ScanStats
	TruncatedCount int
	Warnings       []string
}

// CountBySeverity returns issue counts keyed by severity.
func (r *Result) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, fi := range r.Issues {
		counts[fi.Issue.Severity]++
	}
	return counts
}

// CountByCategory returns issue counts keyed by category.
func (r *Result) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, fi := range r.Issues {
		counts[CategoryOf(fi.Issue.Kind)]++
	}
	return counts
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes gitignored files. Gitignore only applies to
// relative paths: absolute paths (like /tmp/...) are outside the project.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatterns expands glob patterns to stylesheet paths, with
// deduplication, directory filtering, and scan statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// ScanFiles expands the glob patterns and analyzes every matched stylesheet
// concurrently. Unreadable files become warnings, not errors: one bad file
// should not sink a whole run. Issues come back sorted by file, line, and
// column regardless of completion order.
func ScanFiles(patterns []string, cfg Config) (*Result, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, err
	}

	result := &Result{Stats: stats}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		file := file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				mu.Lock()
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("skipping %s: %v", file, err))
				mu.Unlock()
				return nil
			}

			source := string(data)
			issues := Analyze(source, VariantForPath(file), cfg)

			fileIssues := make([]FileIssue, len(issues))
			for i, issue := range issues {
				fileIssues[i] = FileIssue{
					File:       file,
					Issue:      issue,
					SourceLine: SourceLineAt(source, issue.Line),
				}
			}

			mu.Lock()
			result.Issues = append(result.Issues, fileIssues...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortFileIssues(result.Issues)
	sort.Strings(result.Warnings)

	// The per-file cap already applied inside Analyze; the run-wide cap
	// applies after merging.
	if cfg.MaxProblems > 0 && len(result.Issues) > cfg.MaxProblems {
		result.TruncatedCount = len(result.Issues) - cfg.MaxProblems
		result.Issues = result.Issues[:cfg.MaxProblems]
	}

	return result, nil
}

// sortFileIssues orders issues by file, line, then column.
func sortFileIssues(issues []FileIssue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		if issues[i].Issue.Line != issues[j].Issue.Line {
			return issues[i].Issue.Line < issues[j].Issue.Line
		}
		ci, cj := 0, 0
		if issues[i].Issue.Range != nil {
			ci = issues[i].Issue.Range.StartCol
		}
		if issues[j].Issue.Range != nil {
			cj = issues[j].Issue.Range.StartCol
		}
		return ci < cj
	})
}
