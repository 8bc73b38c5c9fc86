/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fileutil writes program output so that a failed run never leaves
// a partial file behind.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileExists checks whether the given file exists.
// If the file exists, this method also returns the size of the file.
func FileExists(filePath string) (bool, int64, error) {
	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, errors.Wrapf(err, "error checking if file [%s] exists", filePath)
	}
	if fileInfo.IsDir() {
		return false, 0, errors.Errorf("the supplied path [%s] is a dir", filePath)
	}
	return true, fileInfo.Size(), err
}

// CreateAndSyncFileAtomically writes the content to a new temporary file in dir,
// fsyncs it and renames it to the finalFile. In other words, in the event of a crash,
// either the final file will not be visible or it will have the full contents.
// tmpPattern names the temporary file as in os.CreateTemp, so a temporary file
// left behind by an interrupted run never collides with the next one.
// The temporary file is removed on every failure. The finalFile, if exists,
// will be overwritten (default rename behavior)
func CreateAndSyncFileAtomically(dir, tmpPattern, finalFile string, content []byte, perm os.FileMode) error {
	tempFilePath, err := createAndSyncTempFile(dir, tmpPattern, content, perm)
	if err != nil {
		return err
	}
	finalFilePath := filepath.Join(dir, finalFile)
	if err := os.Rename(tempFilePath, finalFilePath); err != nil {
		os.Remove(tempFilePath)
		return errors.Wrapf(err, "error while renaming file:%s", tempFilePath)
	}
	return SyncParentDir(finalFilePath)
}

// createAndSyncTempFile creates a temporary file, writes the content and syncs the file.
// It returns the path of the file.
func createAndSyncTempFile(dir, pattern string, content []byte, perm os.FileMode) (string, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", errors.Wrapf(err, "error while creating temp file in:%s", dir)
	}
	filePath := file.Name()
	fail := func(err error, msg string) (string, error) {
		file.Close()
		os.Remove(filePath)
		return "", errors.Wrapf(err, "%s:%s", msg, filePath)
	}
	if err := file.Chmod(perm); err != nil {
		return fail(err, "error while setting mode of the file")
	}
	if _, err := file.Write(content); err != nil {
		return fail(err, "error while writing to file")
	}
	if err := file.Sync(); err != nil {
		return fail(err, "error while synching the file")
	}
	if err := file.Close(); err != nil {
		os.Remove(filePath)
		return "", errors.Wrapf(err, "error while closing the file:%s", filePath)
	}
	return filePath, nil
}

// SyncParentDir fsyncs the parent dir of the given path
func SyncParentDir(path string) error {
	return SyncDir(filepath.Dir(path))
}
