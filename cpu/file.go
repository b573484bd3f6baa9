package cpu

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// openOutput opens an existing output file for writing, without
// truncation. A missing file is created empty and opened again, once.
func (asm *Assembler) openOutput(path string) (ouf *os.File, err error) {
	for retry := 0; ; retry++ {
		ouf, err = os.OpenFile(path, os.O_WRONLY, 0)
		if err == nil {
			return
		}

		if !errors.Is(err, fs.ErrNotExist) || retry > 0 {
			err = errors.Join(ErrOutputOpen, err)
			return
		}

		if asm.Verbose {
			log.Printf("%v: creating file", path)
		}

		var created *os.File
		created, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
		if err != nil {
			err = errors.Join(ErrOutputCreate, err)
			return
		}
		err = created.Close()
		if err != nil {
			err = errors.Join(ErrOutputCreate, err)
			return
		}
	}
}

// replaceFile writes the image to a temporary file beside path, then renames
// it over path. The previous image survives any failure.
func (asm *Assembler) replaceFile(path string, mode fs.FileMode, image []byte) (err error) {
	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		path = resolved
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if asm.Verbose {
		log.Printf("%v: staging %v", path, tmp.Name())
	}

	_, err = tmp.Write(image)
	if err != nil {
		return
	}
	err = tmp.Chmod(mode.Perm())
	if err != nil {
		return
	}
	err = tmp.Sync()
	if err != nil {
		return
	}
	err = tmp.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp.Name(), path)
	return
}

// WriteFile assembles the instructions and writes the image to path.
// Nothing is written unless every instruction encodes.
func (asm *Assembler) WriteFile(path string, insts []Instruction) (err error) {
	prog, err := asm.Assemble(insts)
	if err != nil {
		return
	}

	image := prog.Binary()

	defer func() {
		if err != nil {
			err = &ErrFile{Path: path, Err: err}
		}
	}()

	ouf, err := asm.openOutput(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil && cerr != nil {
			err = errors.Join(ErrOutputWrite, cerr)
		}
	}()

	if asm.Verbose {
		log.Printf("%v: writing", path)
	}

	fi, err := ouf.Stat()
	if err == nil && fi.Mode().IsRegular() {
		err = asm.replaceFile(path, fi.Mode(), image)
	} else if err == nil {
		// Devices and pipes cannot be replaced.
		_, err = ouf.Write(image)
	}
	if err != nil {
		err = errors.Join(ErrOutputWrite, err)
		return
	}

	if asm.Verbose {
		log.Printf("%v: wrote %d bytes", path, len(image))
	}

	return
}
