// Package branchname encodes stack identities into git branch names and back.
//
// A managed branch name has the shape
//
//	{prefix}{sep}{base}{sep}part-{N.N}
//
// and its start marker inserts "starts" right after the prefix:
//
//	{prefix}{sep}starts{sep}{base}{sep}part-{N.N}
//
// Decoding is total: any string decodes to some Identity. Callers that care
// about namespace membership must check HasPrefix.
package branchname
