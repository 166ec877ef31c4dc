package steps

import (
	"fmt"
	"net/http"
)

func (fc *FeatureContext) iUploadTheDeliveryToken(token string) error {
	response, err := fc.apiDriver.UploadToken(token)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) aDeliveryTokenIsRegistered(token string) error {
	response, err := fc.apiDriver.UploadToken(token)
	if err != nil {
		return err
	}
	if response.StatusCode != http.StatusNoContent {
		return fmt.Errorf("registering token: unexpected status %d", response.StatusCode)
	}
	return nil
}

func (fc *FeatureContext) iListThePushTokens() error {
	response, err := fc.apiDriver.ListPushTokens(0, 0)
	if err != nil {
		return err
	}
	fc.response = response

	var paginated PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginated); err != nil {
		return err
	}
	fc.responseListData = paginated.Data
	return nil
}

func (fc *FeatureContext) theListShouldContainTheToken(token string) error {
	for _, item := range fc.responseListData {
		if item["token"] == token {
			return nil
		}
	}
	return fmt.Errorf("token %q not found in list", token)
}

func (fc *FeatureContext) iUnregisterTheToken(token string) error {
	response, err := fc.apiDriver.UnregisterToken(token)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}
