package object

import "testing"

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}

	if diff1.HashKey() != diff2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}

	if hello1.HashKey() == diff1.HashKey() {
		t.Errorf("strings with different content have same hash keys")
	}
}

func TestBooleanHashKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}
	false2 := &Boolean{Value: false}

	if true1.HashKey() != true2.HashKey() {
		t.Errorf("true has different hash keys")
	}

	if false1.HashKey() != false2.HashKey() {
		t.Errorf("false has different hash keys")
	}

	if true1.HashKey() == false1.HashKey() {
		t.Errorf("true has same hash key as false")
	}
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two1 := &Integer{Value: 2}
	two2 := &Integer{Value: 2}

	if one1.HashKey() != one2.HashKey() {
		t.Errorf("integers with same content have different hash keys")
	}

	if two1.HashKey() != two2.HashKey() {
		t.Errorf("integers with same content have different hash keys")
	}

	if one1.HashKey() == two1.HashKey() {
		t.Errorf("integers with different content have same hash keys")
	}
}

func TestErrorHashKey(t *testing.T) {
	err1 := &Error{Message: "type mismatch: INTEGER + STRING"}
	err2 := &Error{Message: "type mismatch: INTEGER + STRING"}
	diff := &Error{Message: "identifier not found: foobar"}

	if err1.HashKey() != err2.HashKey() {
		t.Errorf("errors with same message have different hash keys")
	}

	if err1.HashKey() == diff.HashKey() {
		t.Errorf("errors with different messages have same hash keys")
	}
}

func TestErrorAsHashableAndMapKey(t *testing.T) {
	var err Object = &Error{Message: "identifier not found: foobar"}

	hashable, ok := err.(Hashable)
	if !ok {
		t.Fatalf("*Error does not implement Hashable")
	}

	pairs := map[HashKey]HashPair{
		hashable.HashKey(): {Key: err, Value: &Integer{Value: 1}},
	}

	pair, ok := pairs[hashable.HashKey()]
	if !ok {
		t.Fatalf("expected *Error to be usable as a hash key")
	}

	if pair.Value.(*Integer).Value != 1 {
		t.Errorf("wrong value for error hash key. got=%d", pair.Value.(*Integer).Value)
	}
}

func TestObjectInspect(t *testing.T) {
	tests := []struct {
		obj      Object
		expected string
	}{
		{&Integer{Value: 5}, "5"},
		{&Boolean{Value: true}, "true"},
		{&Boolean{Value: false}, "false"},
		{&String{Value: "hello"}, "hello"},
		{&Null{}, "null"},
		{&ReturnValue{Value: &Integer{Value: 10}}, "10"},
		{&Error{Message: "oops"}, "ERROR: oops"},
		{&Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}, "[1, 2]"},
	}

	for _, tt := range tests {
		if tt.obj.Inspect() != tt.expected {
			t.Errorf("wrong Inspect() output. want=%q, got=%q", tt.expected, tt.obj.Inspect())
		}
	}
}

func TestObjectType(t *testing.T) {
	tests := []struct {
		obj      Object
		expected Type
	}{
		{&Integer{}, INTEGER_OBJ},
		{&Boolean{}, BOOLEAN_OBJ},
		{&String{}, STRING_OBJ},
		{&Null{}, NULL_OBJ},
		{&ReturnValue{Value: &Null{}}, RETURN_VALUE_OBJ},
		{&Error{}, ERROR_OBJ},
		{&Builtin{}, BUILTIN_OBJ},
		{&Array{}, ARRAY_OBJ},
		{&Hash{}, HASH_OBJ},
		{&CompiledFunction{}, COMPILED_FUNCTION_OBJ},
		{&Closure{Fn: &CompiledFunction{}}, CLOSURE_OBJ},
	}

	for _, tt := range tests {
		if tt.obj.Type() != tt.expected {
			t.Errorf("wrong Type(). want=%q, got=%q", tt.expected, tt.obj.Type())
		}
	}
}
