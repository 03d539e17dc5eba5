package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/wasmut/internal/model"
)

const (
	reportFileName = "report.yaml"
	shardDirPrefix = "shard_"
)

// ErrReportNotFound is returned when a reports directory holds no report.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists run reports as YAML.
type ReportStore interface {
	// SaveReport writes report to <dir>/report.yaml, creating dir if needed.
	SaveReport(ctx context.Context, dir m.Path, report m.Report) error
	// LoadReport reads <dir>/report.yaml.
	LoadReport(ctx context.Context, dir m.Path) (m.Report, error)
	// LoadShardReports reads every <dir>/shard_<i>/report.yaml ordered by i.
	LoadShardReports(ctx context.Context, dir m.Path) ([]m.Report, error)
	// ShardDir returns the directory a shard writes its report to.
	ShardDir(dir m.Path, shardIndex int) m.Path
}

type reportStore struct{}

// NewReportStore constructs the YAML-file ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func (s *reportStore) LoadReport(ctx context.Context, dir m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	path := filepath.Join(string(dir), reportFileName)

	// #nosec G304 - path is inside the configured reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return m.Report{}, err
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return report, nil
}

func (s *reportStore) LoadShardReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, dir)
		}

		return nil, err
	}

	type shard struct {
		index int
		dir   m.Path
	}

	var shards []shard

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), shardDirPrefix) {
			continue
		}

		index, err := strconv.Atoi(strings.TrimPrefix(entry.Name(), shardDirPrefix))
		if err != nil {
			continue
		}

		shards = append(shards, shard{index: index, dir: m.Path(filepath.Join(string(dir), entry.Name()))})
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i].index < shards[j].index })

	reports := make([]m.Report, 0, len(shards))

	for _, sh := range shards {
		report, err := s.LoadReport(ctx, sh.dir)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if len(reports) == 0 {
		return nil, fmt.Errorf("%w: no %s* directories in %s", ErrReportNotFound, shardDirPrefix, dir)
	}

	return reports, nil
}

func (s *reportStore) ShardDir(dir m.Path, shardIndex int) m.Path {
	return m.Path(filepath.Join(string(dir), fmt.Sprintf("%s%d", shardDirPrefix, shardIndex)))
}
