package order

import "fmt"

// materialize renames every atom chemin1…cheminN in cut order (spec
// §4.5 "Renaming") and bakes each atom's final reversed flag into its
// Path, since everything downstream (serialization) reads Path, not
// the reversed flag.
func materialize(seq []atom) {
	for i, a := range seq {
		a.shape.ID = fmt.Sprintf("chemin%d", i+1)
		a.shape.Path = a.path()
	}
}
