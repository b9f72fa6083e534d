package io

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/io.go github.com/kasuboski/reelinfo/pkg/io FileIO
