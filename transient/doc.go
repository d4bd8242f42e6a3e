// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies attempt errors by transience: a
// retryable status code, a timeout, a refused or reset connection, or
// nothing transient at all.
//
// It depends only on the standard library packages "errors" and
// "syscall", and recognizes errors structurally (Transient and Timeout
// methods) so it can sit below every other package in the module.
package transient
