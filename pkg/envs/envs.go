package envs

import (
	"path/filepath"
	"time"

	"github.com/narasux/chemlab/pkg/common/runmode"
	"github.com/narasux/chemlab/pkg/utils/envx"
	"github.com/narasux/chemlab/pkg/utils/pathx"
)

// 以下变量值可通过环境变量指定
var (
	// Domain 服务域名
	Domain = envx.Get("DOMAIN", "chem.narasux.cn")

	// DomainScheme 服务域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "https")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// TmplFileBaseDir
	TmplFileBaseDir = envx.Get("TMPL_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../templates"))

	// StaticFileBaseDir
	StaticFileBaseDir = envx.Get("STATIC_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../static"))

	// DataBaseDir 化学反应等静态数据存放目录
	DataBaseDir = envx.Get("DATA_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../data"))

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// ContactEmail 联系邮箱
	ContactEmail = envx.Get("CONTACT_EMAIL", "suzh9@mail2.sysu.edu.cn")

	// RealClientIPHeaderKey 反向代理透传真实 IP 的请求头，为空则使用 gin 的 ClientIP
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// CorsAllowedOrigins 允许跨域的来源，多个以逗号分隔，* 表示全部
	CorsAllowedOrigins = envx.Get("CORS_ALLOWED_ORIGINS", "*")
)

// PubChem 相关配置
var (
	// PubChemBaseURL PUG REST 接口地址
	PubChemBaseURL = envx.Get("PUBCHEM_BASE_URL", "https://pubchem.ncbi.nlm.nih.gov/rest/pug")

	// PubChemUserAgent 请求 PubChem 时使用的 UA
	PubChemUserAgent = envx.Get("PUBCHEM_USER_AGENT", "chemlab/1.0 (+https://chem.narasux.cn)")

	// PubChemRPS 每秒请求数上限，0 表示不限制
	PubChemRPS = envx.GetFloat("PUBCHEM_RPS", 0)

	// PubChemTimeout 单次请求超时时间
	PubChemTimeout = envx.GetDuration("PUBCHEM_TIMEOUT", 15*time.Second)
)

// MySQL 配置，MysqlHost 为空表示不启用数据库（点赞功能不可用）
var (
	MysqlHost     = envx.Get("MYSQL_HOST", "")
	MysqlPort     = envx.Get("MYSQL_PORT", "3306")
	MysqlUser     = envx.Get("MYSQL_USER", "root")
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "chemlab")
	MysqlCharSet  = envx.Get("MYSQL_CHARSET", "utf8mb4")

	// MysqlMaxIdleConns 最大空闲连接数（点赞写入量小，默认值较低）
	MysqlMaxIdleConns = envx.GetInt("MYSQL_MAX_IDLE_CONNS", 5)
	// MysqlMaxOpenConns 最大连接数
	MysqlMaxOpenConns = envx.GetInt("MYSQL_MAX_OPEN_CONNS", 20)
)
