package rules

const signatureCheckSmali = `.class public Lcom/pairip/SignatureCheck;
.super Ljava/lang/Object;

.method public static verifyIntegrity(Landroid/content/Context;)V
    .locals 3

    invoke-static {p0}, Lcom/pairip/SignatureCheck;->verifySignatureMatches(Ljava/lang/String;)Z

    move-result v0

    if-nez v0, :cond_0

    new-instance v1, Lcom/pairip/SignatureCheck$SignatureTamperedException;

    throw v1

    :cond_0
    return-void
.end method

.method private static verifySignatureMatches(Ljava/lang/String;)Z
    .locals 2

    sget-object v0, Lcom/pairip/SignatureCheck;->expectedSignature:Ljava/lang/String;

    invoke-virtual {v0, p0}, Ljava/lang/String;->equals(Ljava/lang/Object;)Z

    move-result v1

    return v1
.end method
`

const applicationSmali = `.class public Lcom/demo/x/App;
.super Landroid/app/Application;

.method public onCreate()V
    .locals 0

    invoke-static {p0}, Lcom/pairip/SignatureCheck;->verifyIntegrity(Landroid/content/Context;)V

    invoke-super {p0}, Landroid/app/Application;->onCreate()V

    return-void
.end method
`

const licenseClientSmali = `.class public Lcom/pairip/licensecheck/LicenseClient;
.super Ljava/lang/Object;

.method public connectToLicensingService()V
    .locals 4

    new-instance v0, Landroid/content/Intent;

    invoke-direct {v0}, Landroid/content/Intent;-><init>()V

    return-void
.end method

.method public initializeLicenseCheck()V
    .locals 1

    invoke-virtual {p0}, Lcom/pairip/licensecheck/LicenseClient;->connectToLicensingService()V

    return-void
.end method

.method public processResponse(ILandroid/os/Bundle;)V
    .locals 2

    if-nez p1, :cond_0

    return-void

    :cond_0
    invoke-direct {p0, p1}, Lcom/pairip/licensecheck/LicenseClient;->handleError(I)V

    return-void
.end method
`

const vmRunnerSmali = `.class public Lcom/pairip/VMRunner;
.super Ljava/lang/Object;

.method static constructor <clinit>()V
    .locals 0

    return-void
.end method
`

const manifestXML = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.demo.x"
	android:requiredSplitTypes="base__abi,base__density"
	android:splitTypes="">
	<uses-permission android:name="com.android.vending.CHECK_LICENSE"/>
	<application android:label="Demo"
		android:extractNativeLibs="false"
		android:name="com.demo.x.App">
		<meta-data android:name="com.android.vending.splits.required" android:value="true"/>
		<meta-data android:name="com.android.stamp.source" android:value="https://play.google.com/store"/>
		<meta-data android:name="com.android.vending.derived.apk.id" android:value="1"/>
		<meta-data android:name="com.android.dynamic.apk.fused.modules" android:value="base"/>
		<meta-data android:name="keep.me" android:value="1"/>
		<activity android:name="com.pairip.licensecheck.LicenseActivity"/>
		<provider android:name="com.pairip.licensecheck.LicenseContentProvider" android:authorities="com.demo.x.com.pairip.licensecheck.LicenseContentProvider"/>
		<activity android:name="com.demo.x.Main" android:isSplitRequired="true"/>
	</application>
</manifest>
`
