// Package cpp builds declaration trees from C and C++ sources using the
// tree-sitter grammars.
//
// Only the parts of a translation unit that can hold stampable constants are
// recorded: namespaces (named, anonymous and nested "a::b" definitions),
// linkage specifications, preprocessor conditional blocks, variable
// declarations with an initializer and static data members of classes,
// structs and unions. Function bodies and templates are skipped.
package cpp
