package service

// SetCodeGenerator replaces the invite code source
func (s *InviteService) SetCodeGenerator(generate func() (string, error)) {
	s.generate = generate
}
