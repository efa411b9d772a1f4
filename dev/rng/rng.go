//go:build linux

// Package rng wraps the ioctls of the Linux random device defined in
// linux/random.h. It exposes a simplified Go API rather than mirroring the
// C interface one to one.
//
// Reading the entropy count works for any user; the operations that modify
// kernel state (crediting, zapping, reseeding) require CAP_SYS_ADMIN and
// will return EPERM otherwise.
package rng

import (
	"fmt"
	"os"

	"github.com/typedio/ioctl"
)

// DefaultDevice is the device the package operates on. /dev/random and
// /dev/urandom share the same driver, so either accepts these commands.
const DefaultDevice = "/dev/urandom"

// The 'R' command group from linux/random.h.
var (
	rndGetEntCnt   = ioctl.IOR[int32]('R', 0x00)
	rndAddToEntCnt = ioctl.IOW[int32]('R', 0x01)
	rndZapEntCnt   = ioctl.IO('R', 0x04)
	rndReseedCRNG  = ioctl.IO('R', 0x07)
)

func withDevice(fn func(dev *os.File) error) error {
	dev, err := os.Open(DefaultDevice)
	if err != nil {
		return err
	}
	defer dev.Close()
	return fn(dev)
}

// EntropyCount returns the content of the kernel entropy pool in bits.
func EntropyCount() (int, error) {
	var bits int32
	err := withDevice(func(dev *os.File) error {
		if _, err := rndGetEntCnt.Exec(dev, &bits); err != nil {
			return fmt.Errorf("error reading the entropy count from %s: %w", DefaultDevice, err)
		}
		return nil
	})
	return int(bits), err
}

// AddToEntropyCount credits (or with a negative delta, debits) the entropy
// estimate by delta bits without adding any data to the pool.
func AddToEntropyCount(delta int32) error {
	return withDevice(func(dev *os.File) error {
		if _, err := rndAddToEntCnt.Exec(dev, &delta); err != nil {
			return fmt.Errorf("error adjusting the entropy count by %d bits: %w", delta, err)
		}
		return nil
	})
}

// ZapEntropyCount resets the entropy estimate to zero. The pool contents
// are untouched.
func ZapEntropyCount() error {
	return withDevice(func(dev *os.File) error {
		if _, err := rndZapEntCnt.Exec(dev); err != nil {
			return fmt.Errorf("error zapping the entropy count: %w", err)
		}
		return nil
	})
}

// ReseedCRNG forces an immediate reseed of the kernel's CRNG from the
// entropy pool.
func ReseedCRNG() error {
	return withDevice(func(dev *os.File) error {
		if _, err := rndReseedCRNG.Exec(dev); err != nil {
			return fmt.Errorf("error reseeding the CRNG: %w", err)
		}
		return nil
	})
}
