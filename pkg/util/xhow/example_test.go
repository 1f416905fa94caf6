package xhow_test

import (
	"fmt"

	"github.com/omeyang/xhow/pkg/util/xhow"
)

// =============================================================================
// How 示例
// =============================================================================

func ExampleWrap() {
	k := xhow.Wrap("user:42")
	fmt.Println(k.IsHashed())

	k.Hash()
	fmt.Println(k.IsHashed())

	// 任何可变访问都会清空缓存
	*k.Mut() += ":profile"
	fmt.Println(k.IsHashed(), k.Get())
	// Output:
	// false
	// true
	// false user:42:profile
}

func ExampleHow_Equal() {
	a := xhow.Wrap("alpha")
	b := xhow.Wrap("beta")
	a.Hash()
	b.Hash()

	// 两侧都已缓存且哈希码不同，不比较值即可得出结论
	fmt.Println(a.Equal(b))
	fmt.Println(a.Equal(xhow.Wrap("alpha")))
	// Output:
	// false
	// true
}

func ExampleHow_Clone() {
	a := xhow.New[string, xhow.XXHash[string], xhow.SharedAtomic64]("shared")
	b := a.Clone()
	fmt.Println(a.Storer().Refs())

	a.Hash()
	fmt.Println(b.IsHashed())

	// 修改其中一个会换到独占槽位，另一个不受影响
	a.Set("changed")
	fmt.Println(a.IsHashed(), b.IsHashed(), a.Storer().Refs())
	// Output:
	// 2
	// true
	// false true 1
}

// =============================================================================
// Scheme 与 Borrowed 示例
// =============================================================================

func ExampleScheme() {
	var keys xhow.SyncScheme[string, xhow.XXHash[string]]

	k := keys.New("session:7")
	fmt.Println(k.Hash() == keys.Hash("session:7"))
	fmt.Println(k.EqualBorrowed(keys.Borrow("session:7")))
	// Output:
	// true
	// true
}

func ExampleRef() {
	s := "lookup"
	r := xhow.Ref[string, xhow.XXHash[string], xhow.Cell64](&s)
	fmt.Println(r)
	fmt.Println(r.Hash() == xhow.Wrap("lookup").Hash())
	// Output:
	// Borrowed(lookup)
	// true
}

func ExampleDigest() {
	var keys xhow.LocalScheme[account, xhow.Digest[account]]
	k := keys.New(account{id: 1, name: "alice"})
	fmt.Println(k.EqualValue(account{id: 1, name: "alice"}))
	// Output: true
}

type account struct {
	id   int
	name string
}

func (a account) WriteHash(w xhow.Writer) {
	_, _ = fmt.Fprintf(w, "%d:%s", a.id, a.name)
}

func (a account) Equal(other account) bool {
	return a == other
}
