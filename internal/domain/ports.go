package domain

import "context"

// MetamodelLoader reads and validates the metamodel document.
type MetamodelLoader interface {
	Load(path string) (*Metamodel, error)
}

// LookupLoader loads every table in AllTables from a directory. A missing
// table is an ErrLookupTable error.
type LookupLoader interface {
	Load(dir string) (LookupTables, error)
}

// ConfigLoader reads .mars.yaml from a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ContentReader returns the contents of a configuration file referenced by
// the metamodel.
type ContentReader interface {
	ReadContent(path string) (string, error)
}

// RepoCloner acquires a remote repository into a local working directory,
// replacing whatever the directory held before.
type RepoCloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// GitInfo reads version-control facts about a local directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
