// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

type greeterService struct{}

func NewGreeterService() GreeterService {
	return &greeterService{}
}

func (s *greeterService) Greet(name string) string {
	return "Hello, " + name + "! You've been greeted!"
}
