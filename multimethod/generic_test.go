package multimethod_test

import (
	"errors"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/npillmayer/patmat/multimethod"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// The classic multimethod example: add, specialized on the arguments'
// runtime types.
func makeAdd() *multimethod.Func {
	add := multimethod.New("add", multimethod.WithConstructor(multimethod.OnType))
	add.Register([]interface{}{reflect.TypeOf(0), reflect.TypeOf(0)}, nil,
		func(args []interface{}, _ map[string]interface{}) interface{} {
			return args[0].(int) + args[1].(int)
		})
	add.Register([]interface{}{reflect.TypeOf(0), reflect.TypeOf("")}, nil,
		func(args []interface{}, _ map[string]interface{}) interface{} {
			n, _ := strconv.Atoi(args[1].(string))
			return args[0].(int) + n
		})
	return add
}

func TestGenericAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmat.dispatch")
	defer teardown()
	//
	add := makeAdd()
	v, err := add.Call(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	v, err = add.Call(1, "10")
	require.NoError(t, err)
	require.Equal(t, 11, v)

	_, err = add.Call(1, 1.5)
	require.Error(t, err, "no method covers (int, float64)")
	var noMethod *multimethod.NoMethodError
	require.True(t, errors.As(err, &noMethod))
	require.Equal(t, "add", noMethod.Call.Name)
	require.Equal(t, []interface{}{1, 1.5}, noMethod.Call.Args)
}

// Dispatch on the value stored under the "type" key of each argument.
func TestGenericSay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmat.dispatch")
	defer teardown()
	//
	say := multimethod.New("say", multimethod.WithConstructor(multimethod.OnKey("type")))
	say.Register([]interface{}{"person", "person"}, nil,
		func(args []interface{}, _ map[string]interface{}) interface{} {
			x := args[0].(map[string]string)
			y := args[1].(map[string]string)
			return "I say '" + x["what"] + "', you say '" + y["what"] + "'"
		})
	say.Register([]interface{}{"person", "robot"}, nil,
		func(args []interface{}, _ map[string]interface{}) interface{} {
			x := args[0].(map[string]string)
			y := args[1].(map[string]string)
			return "I say '" + x["what"] + "', you say 'bip boop " + y["what"] + " bip boop'"
		})

	v, err := say.Call(
		map[string]string{"type": "person", "what": "Hello!"},
		map[string]string{"type": "robot", "what": "GOODBYE!"})
	require.NoError(t, err)
	require.Equal(t, "I say 'Hello!', you say 'bip boop GOODBYE! bip boop'", v)

	_, err = say.Call(
		map[string]string{"type": "person", "what": "Hello!"},
		map[string]string{"type": "cat", "what": "Meow"})
	require.Error(t, err)
}

func TestGenericDescribe(t *testing.T) {
	describe := multimethod.New("describe", multimethod.WithConstructor(multimethod.OnKey("type")))
	describe.Register([]interface{}{"particle"}, nil,
		func([]interface{}, map[string]interface{}) interface{} {
			return "a mote of matter"
		})
	describe.Register([]interface{}{"triangle"}, nil,
		func([]interface{}, map[string]interface{}) interface{} {
			return "three sides"
		})

	v, err := describe.Call(map[string]string{"type": "particle"})
	require.NoError(t, err)
	require.Equal(t, "a mote of matter", v)

	v, err = describe.Call(map[string]string{"type": "triangle"})
	require.NoError(t, err)
	require.Equal(t, "three sides", v)

	_, err = describe.Call(map[string]string{"type": "unknown"})
	var noMethod *multimethod.NoMethodError
	require.True(t, errors.As(err, &noMethod))
}

// Concurrent calls against a stable registry share nothing but the
// registry's read path.
func TestGenericConcurrentCalls(t *testing.T) {
	add := makeAdd()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := add.Call(n, j)
				if err != nil {
					t.Errorf("dispatch failed: %v", err)
					return
				}
				if v != n+j {
					t.Errorf("expected %d, got %v", n+j, v)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestGenericConcurrentRegistration(t *testing.T) {
	add := makeAdd()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			// re-register the same key; calls must keep observing a
			// consistent snapshot
			add.Register([]interface{}{reflect.TypeOf(0), reflect.TypeOf(0)}, nil,
				func(args []interface{}, _ map[string]interface{}) interface{} {
					return args[0].(int) + args[1].(int)
				})
		}
	}()
	for j := 0; j < 100; j++ {
		v, err := add.Call(1, j)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if v != 1+j {
			t.Fatalf("expected %d, got %v", 1+j, v)
		}
	}
	<-done
}
