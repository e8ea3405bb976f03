//go:build mobile

package utils

// IsMobile ebitenmobile 构建（-tags mobile）始终为移动模式
func IsMobile() bool {
	return true
}
