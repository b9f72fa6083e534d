package storage

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/storage.go github.com/kasuboski/reelinfo/pkg/storage Storage,MovieFileStorage
