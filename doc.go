package goform

// Package goform manages the state of an HTML-style form outside the DOM:
//
// - One value tree with parallel touched and errors trees, addressed by dotted paths
// - A path-keyed validator registry with "_item" wildcards for array elements
// - Watch callbacks and a debug dump that observe every write
// - Input, blur and submit handling against an InputBinding
//
// Design policy:
// - Keep only public APIs in the root package; put the trees, the notifier and the
//   validation engine under internal/.
// - Validators live under rules/, YAML/JSON form definitions under manifest/, an
//   in-memory binding under memdom/, and the CLI under cmd/goform.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  f, err := goform.New(goform.Options{
//      InitialValues: map[string]any{"name": "", "hobbies": []any{""}},
//      Validations: map[string]goform.Validator{
//          "name":          rules.Required(),
//          "hobbies._item": rules.MinLength(2),
//      },
//      OnSubmit: func(values map[string]any) { ... },
//  }, binding)
//
//  f.HandleInput("name")
//  prevent := f.HandleSubmit()
//
// A Form is not safe for concurrent use. Drive it from one goroutine, the
// way a browser drives a form from its event loop.
