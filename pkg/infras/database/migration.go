package database

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
)

// 迁移 ID 格式，同时决定迁移的执行顺序
const migrationIDLayout = "20060102_150405"

// ErrDuplicateMigration 迁移 ID 重复
var ErrDuplicateMigration = errors.New("duplicate migration id")

type migrationSet struct {
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	if m == nil || m.ID == "" {
		return errors.New("migration id is required")
	}
	if _, ok := s.mapping[m.ID]; ok {
		return errors.Wrap(ErrDuplicateMigration, m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 按 ID 升序返回全部迁移
func (s *migrationSet) migrations() []*gormigrate.Migration {
	migrations := make([]*gormigrate.Migration, 0, len(s.mapping))
	for _, m := range s.mapping {
		migrations = append(migrations, m)
	}
	slices.SortFunc(migrations, func(a, b *gormigrate.Migration) int {
		return strings.Compare(a.ID, b.ID)
	})
	return migrations
}

// GenMigrationID 生成迁移 ID
func GenMigrationID() string {
	return time.Now().Format(migrationIDLayout)
}

// RunMigrate 执行迁移，migrationID 为空表示迁移到最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	migrations := getMigrationSet().migrations()
	if len(migrations) == 0 {
		return errors.New("no migration registered")
	}

	m := gormigrate.New(Client(ctx), gormigrate.DefaultOptions, migrations)
	if migrationID == "" {
		return errors.Wrap(m.Migrate(), "migrate to latest")
	}
	return errors.Wrapf(m.MigrateTo(migrationID), "migrate to %s", migrationID)
}

// Version 当前数据库版本（最后一次执行的迁移 ID）
func Version(ctx context.Context) (string, error) {
	var version string
	err := Client(ctx).
		Table(gormigrate.DefaultOptions.TableName).
		Select(gormigrate.DefaultOptions.IDColumnName).
		Order(gormigrate.DefaultOptions.IDColumnName + " DESC").
		Limit(1).
		Scan(&version).Error
	if err != nil {
		return "", errors.Wrap(err, "query database version")
	}
	return version, nil
}
