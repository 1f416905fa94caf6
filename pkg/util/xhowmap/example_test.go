package xhowmap_test

import (
	"fmt"

	"github.com/omeyang/xhow/pkg/util/xhow"
	"github.com/omeyang/xhow/pkg/util/xhowmap"
)

func ExampleMap() {
	var keys xhow.LocalScheme[string, xhow.XXHash[string]]
	type key = xhow.Local[string, xhow.XXHash[string]]

	m := xhowmap.New[string, *key, int]()
	m.Insert(keys.New("a"), -1)
	m.Insert(keys.New("b"), -2)

	// 用借用视图查找，不构造新的 How
	v, ok := m.Get(keys.Borrow("a"))
	fmt.Println(v, ok)

	_, ok = m.Get(keys.Borrow("z"))
	fmt.Println(ok)
	// Output:
	// -1 true
	// false
}

func ExampleMap_Insert() {
	type key = xhow.Local[string, xhow.XXHash[string]]
	m := xhowmap.New[string, *key, string]()

	m.Insert(xhow.Wrap("k"), "first")
	old, replaced := m.Insert(xhow.Wrap("k"), "second")
	fmt.Println(old, replaced, m.Len())
	// Output: first true 1
}
