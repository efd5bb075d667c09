// 包 addr：文本地址解析，位于核心查询引擎之外
// 背景：xdb 核心只消费已验证长度的字节序列（4 或 16 字节），不关心其来源；
// 本包负责把用户输入的文本地址转换为该字节形式，并在此处拒绝非法输入。
package addr

import (
	"fmt"
	"net/netip"
)

// Parse：将文本 IPv4/IPv6 地址解析为核心期望的字节序列
// 背景：使用标准库 net/netip 而非更重的 net.IP 路径，贴合高频查询场景；
// IPv4-in-IPv6（如 ::ffff:a.b.c.d）会被还原为 4 字节形式，
// 与 xdb 文件中 IPv4 槽位的寻址方式保持一致。
// 约束：仅接受合法的文本地址；非法输入在此处被拒绝，核心层不再重复校验文本形态。
func Parse(s string) ([]byte, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return nil, fmt.Errorf("addr: parse %q: %w", s, err)
	}
	if a.Is4In6() {
		a = a.Unmap()
	}
	b := a.AsSlice()
	if len(b) != 4 && len(b) != 16 {
		return nil, fmt.Errorf("addr: %q has unexpected length %d", s, len(b))
	}
	return b, nil
}
