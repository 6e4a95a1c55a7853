package runmode

const (
	// Debug 调试模式
	Debug = "debug"
	// Release 生产模式
	Release = "release"
	// Test 测试模式
	Test = "test"
)
