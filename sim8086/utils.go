package main

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()

	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// return true if two files are the same
func compareTwoFiles(f1, f2 string) (bool, error) {
	h1, err := hashFile(f1)
	if err != nil {
		return false, fmt.Errorf("could not hash %s: %w", f1, err)
	}

	h2, err := hashFile(f2)
	if err != nil {
		return false, fmt.Errorf("could not hash %s: %w", f2, err)
	}

	return h1 == h2, nil
}
