package core

// These empty structs serve as declarative annotations embedded within
// user-defined structs passed to DefineStruct.
//
// Decorum carries type-level metadata through its tags (currently `name`).
// Frozen marks the resulting type as closed once it is built.
//
// They carry no data or methods themselves and are exercised through
// DefineStruct rather than directly.

type Decorum struct{}
type Frozen struct{}
