//go:build !mobile

// Package mobile 只在 -tags mobile 构建时包含 ebitenmobile 绑定，
// 普通构建保留这个占位文件让 ./... 能正常编译。
package mobile

// Dummy 普通构建下的空函数
func Dummy() {}
