package bloomgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/bloomgo"
	"github.com/hupe1980/bloomgo/blobstore"
)

func Example() {
	f, err := bloomgo.New(
		bloomgo.WithCapacity(10_000),
		bloomgo.WithErrorRate(0.001),
	)
	if err != nil {
		panic(err)
	}

	if err := f.Insert(bloomgo.String("alice@example.com")); err != nil {
		panic(err)
	}

	res, _ := f.Query(bloomgo.String("alice@example.com"))
	fmt.Println(res.OK)

	res, _ = f.Query(bloomgo.String("mallory@example.com"))
	fmt.Println(res.OK)
	// Output:
	// true
	// false
}

func Example_counting() {
	f, err := bloomgo.New(bloomgo.WithCounting())
	if err != nil {
		panic(err)
	}

	_ = f.Insert(bloomgo.String("session-1"))

	res, _ := f.Delete(bloomgo.String("session-1"))
	fmt.Println(res.OK)

	res, _ = f.Query(bloomgo.String("session-1"))
	fmt.Println(res.OK)
	// Output:
	// true
	// false
}

func Example_snapshot() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	f, err := bloomgo.New(bloomgo.WithCapacity(1000))
	if err != nil {
		panic(err)
	}
	_ = f.Insert(bloomgo.Strings("a", "b", "c"))

	if err := f.Save(ctx, store, "demo.blf"); err != nil {
		panic(err)
	}

	loaded, err := bloomgo.Load(ctx, store, "demo.blf")
	if err != nil {
		panic(err)
	}

	res, _ := loaded.Query(bloomgo.String("b"))
	fmt.Println(res.OK)
	// Output:
	// true
}
