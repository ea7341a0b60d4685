// Package fileops holds the spaceworld file and dir leaf actions. Every
// action takes its target after the ~ sentinel of the submitted line.
package fileops

import "os"

type Deps struct {
	Create    func(name string) (*os.File, error)
	ReadFile  func(name string) ([]byte, error)
	WriteFile func(name string, data []byte, perm os.FileMode) error
	Remove    func(name string) error
	Mkdir     func(name string, perm os.FileMode) error
	Stat      func(name string) (os.FileInfo, error)
}

func DefaultDeps() Deps {
	return Deps{
		Create:    os.Create,
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
		Remove:    os.Remove,
		Mkdir:     os.Mkdir,
		Stat:      os.Stat,
	}
}
