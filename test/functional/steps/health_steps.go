package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatus(expected string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	status, ok := data["status"].(string)
	fc.require.True(ok, "status should be a string")
	fc.require.Equal(expected, status)

	fc.responseData = data
	return nil
}
