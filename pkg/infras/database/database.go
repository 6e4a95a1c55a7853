package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/logging"
)

var (
	db         *gorm.DB
	dbInitOnce sync.Once
)

const (
	// 点赞记录的字符串字段都很短
	defaultStringSize = 64
	// 连接最大存活时间
	connMaxLifetime = time.Hour
	// 建立连接时的探活超时
	pingTimeout = 5 * time.Second
	// 慢查询阈值
	slowQueryThreshold = 200 * time.Millisecond
)

// Config MySQL 连接配置
type Config struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	CharSet      string
	MaxIdleConns int
	MaxOpenConns int
}

// DSN go-sql-driver 连接串
func (c Config) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database, c.CharSet,
	)
}

// String 用于日志，不包含密码
func (c Config) String() string {
	return fmt.Sprintf("mysql %s@%s:%s/%s", c.User, c.Host, c.Port, c.Database)
}

func configFromEnvs() Config {
	return Config{
		Host:         envs.MysqlHost,
		Port:         envs.MysqlPort,
		User:         envs.MysqlUser,
		Password:     envs.MysqlPassword,
		Database:     envs.MysqlDatabase,
		CharSet:      envs.MysqlCharSet,
		MaxIdleConns: envs.MysqlMaxIdleConns,
		MaxOpenConns: envs.MysqlMaxOpenConns,
	}
}

// Ready 数据库是否可用（MYSQL_HOST 为空时不初始化，点赞等功能不可用）
func Ready() bool {
	return db != nil
}

// Client 获取数据库客户端
func Client(ctx context.Context) *gorm.DB {
	if db == nil {
		log.Fatal("database client not init")
	}
	return db.WithContext(ctx)
}

// InitDBClient 根据环境变量初始化数据库客户端，重复调用只会连接一次
func InitDBClient(ctx context.Context) (err error) {
	dbInitOnce.Do(func() {
		cfg := configFromEnvs()
		if db, err = newClient(ctx, cfg); err != nil {
			err = errors.Wrapf(err, "connect %s", cfg)
			return
		}
		logging.GetSystemLogger().Infof("database: %s connected", cfg)
	})
	return err
}

func newClient(ctx context.Context, cfg Config) (*gorm.DB, error) {
	client, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN(),
		DefaultStringSize: defaultStringSize,
	}), newGormConfig())
	if err != nil {
		return nil, errors.Wrap(err, "open gorm")
	}

	sqlDB, err := client.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return client, nil
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		// 点赞只有单条写入，不需要默认事务
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// 数据库迁移时，忽略外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
		// sql 日志写入单独的日志文件
		Logger: gormlogger.New(logging.GetSqlLogger(), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

var (
	migSet         *migrationSet
	migSetInitOnce sync.Once
)

func getMigrationSet() *migrationSet {
	migSetInitOnce.Do(func() {
		migSet = &migrationSet{mapping: map[string]*gormigrate.Migration{}}
	})
	return migSet
}

// RegisterMigration 注册迁移，ID 重复时直接退出
func RegisterMigration(m *gormigrate.Migration) {
	if err := getMigrationSet().register(m); err != nil {
		log.Fatalf("failed to register migration: %s", err)
	}
}
